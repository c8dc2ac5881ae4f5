package comments

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/user/blogstack-go/apperror"
)

// DB is the subset of pgxpool.Pool the service uses.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CommentService provides comment creation and listing.
type CommentService struct {
	db DB
}

// NewCommentService creates a new CommentService.
func NewCommentService(db DB) *CommentService {
	return &CommentService{db: db}
}

// AddComment inserts a new comment and returns it.
func (s *CommentService) AddComment(ctx context.Context, req NewCommentRequest) (*Comment, error) {
	comment := &Comment{Content: req.Content, PostID: req.PostID, AuthorID: req.AuthorID}
	query := `INSERT INTO comments (content, post_id, author_id) VALUES ($1, $2, $3) RETURNING id`
	err := s.db.QueryRow(ctx, query, req.Content, req.PostID, req.AuthorID).Scan(&comment.ID)
	if err != nil {
		return nil, apperror.NewDatabaseError("error adding comment", err)
	}
	return comment, nil
}

// ListByPost returns all comments attached to a blog post.
func (s *CommentService) ListByPost(ctx context.Context, postID int) ([]Comment, error) {
	rows, err := s.db.Query(ctx, `SELECT id, content, post_id, author_id FROM comments WHERE post_id = $1 ORDER BY id`, postID)
	if err != nil {
		return nil, apperror.NewDatabaseError("error fetching comments", err)
	}
	defer rows.Close()

	result := []Comment{}
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.Content, &c.PostID, &c.AuthorID); err != nil {
			return nil, apperror.NewDatabaseError("error scanning comment row", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("error fetching comments", err)
	}
	return result, nil
}
