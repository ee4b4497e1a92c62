package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PostsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blogspace",
		Name:      "posts_created_total",
		Help:      "Posts published through the compose form.",
	})
	DraftsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blogspace",
		Name:      "drafts_rejected_total",
		Help:      "Publish attempts ignored because title or content was empty.",
	})
	Likes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blogspace",
		Name:      "post_likes_total",
		Help:      "Likes applied to posts.",
	})
	Searches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "blogspace",
		Name:      "searches_total",
		Help:      "Search term changes.",
	})
	Transitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blogspace",
		Name:      "view_transitions_total",
		Help:      "View changes by event and outcome.",
	}, []string{"event", "result"})
)
