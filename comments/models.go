// Package comments implements comment creation and listing for the
// comment service.
package comments

// Comment is a comment record attached to a blog post.
type Comment struct {
	ID       int    `json:"id"`
	Content  string `json:"content"`
	PostID   int    `json:"post_id"`
	AuthorID int    `json:"author_id"`
}

// NewCommentRequest is the payload for adding a comment.
type NewCommentRequest struct {
	Content  string `json:"content" example:"Nice post!"`
	PostID   int    `json:"post_id" example:"1"`
	AuthorID int    `json:"author_id" example:"1"`
}
