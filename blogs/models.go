// Package blogs implements blog post CRUD for the blog service.
package blogs

// Blog is a blog post record.
type Blog struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID int    `json:"author_id"`
}

// CreateBlogRequest is the payload for creating a blog post.
type CreateBlogRequest struct {
	Title    string `json:"title" example:"My first post"`
	Content  string `json:"content" example:"Hello, world."`
	AuthorID int    `json:"author_id" example:"1"`
}

// UpdateBlogRequest is the payload for editing a blog post.
type UpdateBlogRequest struct {
	Title   string `json:"title" example:"Revised title"`
	Content string `json:"content" example:"Revised body."`
}
