package models

// BlogPost is a single article. AuthorID references users(id); it is set
// once at creation to the authenticated caller and never reassigned.
type BlogPost struct {
	ID          string    `json:"id"`
	BlogTitle   string    `json:"blogtitle"`
	BlogContent string    `json:"blogcontent"`
	AuthorID    string    `json:"author"`
	Comments    []Comment `json:"comments"`
}

// Comment is one entry of a post's append-only comment list.
// AuthorID is the commenting user's id; it is not expanded on reads.
type Comment struct {
	Text     string `json:"text"`
	AuthorID string `json:"author"`
}
