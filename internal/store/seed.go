package store

import (
	"strings"
	"time"

	"blogspace/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

// MockPosts is the startup data set, newest first.
func MockPosts() []models.Post {
	return []models.Post{
		{
			ID:        1,
			Title:     "Getting Started with React Hooks",
			Content:   "React Hooks have revolutionized the way we write React components. In this comprehensive guide, we'll explore useState, useEffect, and custom hooks. Hooks allow you to use state and other React features without writing a class component. They provide a more direct API to the React concepts you already know: props, state, context, refs, and lifecycle.",
			Author:    models.Author{ID: 2, Name: "Jane Smith"},
			CreatedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			Likes:     42,
			Comments:  8,
			Views:     156,
			Tags:      []string{"React", "JavaScript", "Frontend"},
		},
		{
			ID:        2,
			Title:     "Building Scalable Node.js Applications",
			Content:   "Node.js has become the backbone of modern web development. Learn how to structure your applications for maximum scalability and maintainability. We'll cover best practices for organizing code, handling errors, implementing authentication, and optimizing performance. From setting up your development environment to deploying to production, this guide covers everything you need to know.",
			Author:    models.Author{ID: 3, Name: "Mike Johnson"},
			CreatedAt: time.Date(2024, 1, 12, 14, 20, 0, 0, time.UTC),
			Likes:     38,
			Comments:  12,
			Views:     203,
			Tags:      []string{"Node.js", "Backend", "JavaScript"},
		},
		{
			ID:        3,
			Title:     "Modern CSS Techniques and Best Practices",
			Content:   "CSS has evolved tremendously over the years. Discover the latest techniques including CSS Grid, Flexbox, custom properties, and modern layout methods. We'll explore how to create responsive designs that work across all devices, implement dark mode, and use CSS-in-JS solutions. This post also covers performance optimization and accessibility considerations.",
			Author:    models.Author{ID: 4, Name: "Sarah Wilson"},
			CreatedAt: time.Date(2024, 1, 10, 9, 15, 0, 0, time.UTC),
			Likes:     29,
			Comments:  6,
			Views:     98,
			Tags:      []string{"CSS", "Design", "Frontend"},
		},
	}
}

// FakePosts generates n demo posts older than before, with ids starting at
// firstID. The same seed always produces the same posts.
func FakePosts(n int, firstID int64, before time.Time, seed int64) []models.Post {
	if n <= 0 {
		return nil
	}
	faker := gofakeit.New(seed)

	posts := make([]models.Post, 0, n)
	createdAt := before
	for i := 0; i < n; i++ {
		createdAt = createdAt.Add(-time.Duration(faker.Number(1, 72)) * time.Hour)
		posts = append(posts, models.Post{
			ID:        firstID + int64(i),
			Title:     strings.TrimSuffix(faker.Sentence(faker.Number(3, 8)), "."),
			Content:   faker.Paragraph(2, 4, 12, " "),
			Author:    models.Author{ID: int64(100 + i), Name: faker.Name()},
			CreatedAt: createdAt,
			Likes:     faker.Number(0, 60),
			Comments:  faker.Number(0, 15),
			Views:     faker.Number(0, 300),
			Tags:      fakeTags(faker),
		})
	}
	return posts
}

// SeedPosts returns the mock posts followed by extra generated ones.
func SeedPosts(extra int) []models.Post {
	posts := MockPosts()
	last := posts[len(posts)-1]
	return append(posts, FakePosts(extra, last.ID+1, last.CreatedAt, 42)...)
}

func fakeTags(faker *gofakeit.Faker) []string {
	n := faker.Number(1, 3)
	tags := make([]string, 0, n)
	for i := 0; i < n; i++ {
		tags = append(tags, faker.ProgrammingLanguage())
	}
	return tags
}
