package models

import (
	"time"
)

type Author struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    Author    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	Likes     int       `json:"likes"`
	Comments  int       `json:"comments"` // display-only counter, no comment records behind it
	Views     int       `json:"views"`
	Tags      []string  `json:"tags"`
}

// Clone returns a copy that shares no slices with p.
func (p Post) Clone() Post {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	return p
}
