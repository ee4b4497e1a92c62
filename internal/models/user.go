package models

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CurrentUser is the signed-in user; every composed post is attributed to it.
var CurrentUser = User{ID: 1, Name: "John Doe", Email: "john@example.com"}

func (u User) AsAuthor() Author {
	return Author{ID: u.ID, Name: u.Name}
}
