package utils

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	DateLayout    = "January 2, 2006"
	ExcerptLength = 200
)

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// Excerpt returns the first n runes of s followed by "...".
// The ellipsis is appended even when s is shorter than n.
func Excerpt(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if utf8.RuneCountInString(s) <= n {
		return s + "..."
	}
	return string([]rune(s)[:n]) + "..."
}

// Initial is the upper-cased first letter of name, used for avatars.
func Initial(name string) string {
	name = strings.TrimSpace(name)
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}
