package models

import "strings"

// Draft is the unsaved compose form. Tags is the raw comma-separated input.
type Draft struct {
	Title   string `form:"title" json:"title"`
	Content string `form:"content" json:"content"`
	Tags    string `form:"tags" json:"tags"`
}

// TagList splits Tags on commas, trims each entry and drops empty ones.
func (d Draft) TagList() []string {
	tags := make([]string, 0)
	for _, tag := range strings.Split(d.Tags, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (d Draft) IsZero() bool {
	return d.Title == "" && d.Content == "" && d.Tags == ""
}
