package models

// MockComment is rendered under every post. Comments are not stored.
type MockComment struct {
	Author   string
	Ago      string
	Body     string
	Gradient string // avatar colours
}

var MockComments = []MockComment{
	{
		Author:   "Alex Chen",
		Ago:      "2 days ago",
		Body:     "Great article! This really helped me understand the concepts better.",
		Gradient: "from-green-500 to-blue-600",
	},
	{
		Author:   "Emma Davis",
		Ago:      "1 day ago",
		Body:     "Thanks for sharing this! Looking forward to more content like this.",
		Gradient: "from-purple-500 to-pink-600",
	},
}
