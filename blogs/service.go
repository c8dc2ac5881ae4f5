package blogs

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/user/blogstack-go/apperror"
)

// DB is the subset of pgxpool.Pool the service uses.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// BlogService provides blog post CRUD over the blogs table.
type BlogService struct {
	db DB
}

// NewBlogService creates a new BlogService.
func NewBlogService(db DB) *BlogService {
	return &BlogService{db: db}
}

// CreateBlog inserts a new blog post and returns it.
func (s *BlogService) CreateBlog(ctx context.Context, req CreateBlogRequest) (*Blog, error) {
	blog := &Blog{Title: req.Title, Content: req.Content, AuthorID: req.AuthorID}
	query := `INSERT INTO blogs (title, content, author_id) VALUES ($1, $2, $3) RETURNING id`
	err := s.db.QueryRow(ctx, query, req.Title, req.Content, req.AuthorID).Scan(&blog.ID)
	if err != nil {
		return nil, apperror.NewDatabaseError("error creating blog", err)
	}
	return blog, nil
}

// ListBlogs returns one page of blog posts. page is 1-based.
func (s *BlogService) ListBlogs(ctx context.Context, page, limit int) ([]Blog, error) {
	offset := (page - 1) * limit
	rows, err := s.db.Query(ctx, `SELECT id, title, content, author_id FROM blogs ORDER BY id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, apperror.NewDatabaseError("error fetching blogs", err)
	}
	defer rows.Close()

	blogs := []Blog{}
	for rows.Next() {
		var b Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Content, &b.AuthorID); err != nil {
			return nil, apperror.NewDatabaseError("error scanning blog row", err)
		}
		blogs = append(blogs, b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewDatabaseError("error fetching blogs", err)
	}
	return blogs, nil
}

// GetBlog fetches a single blog post by id.
func (s *BlogService) GetBlog(ctx context.Context, blogID int) (*Blog, error) {
	var blog Blog
	query := `SELECT id, title, content, author_id FROM blogs WHERE id = $1`
	err := s.db.QueryRow(ctx, query, blogID).Scan(&blog.ID, &blog.Title, &blog.Content, &blog.AuthorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("blog with id %d not found", blogID), nil)
		}
		return nil, apperror.NewDatabaseError("error fetching blog", err)
	}
	return &blog, nil
}

// UpdateBlog edits an existing blog post's title and content.
func (s *BlogService) UpdateBlog(ctx context.Context, blogID int, req UpdateBlogRequest) (*Blog, error) {
	var blog Blog
	query := `UPDATE blogs SET title = $1, content = $2 WHERE id = $3 RETURNING id, title, content, author_id`
	err := s.db.QueryRow(ctx, query, req.Title, req.Content, blogID).Scan(&blog.ID, &blog.Title, &blog.Content, &blog.AuthorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("blog with id %d not found", blogID), nil)
		}
		return nil, apperror.NewDatabaseError("error updating blog", err)
	}
	return &blog, nil
}

// DeleteBlog removes a blog post by id.
func (s *BlogService) DeleteBlog(ctx context.Context, blogID int) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, blogID)
	if err != nil {
		return apperror.NewDatabaseError("error deleting blog", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFoundError(fmt.Sprintf("blog with id %d not found", blogID), nil)
	}
	return nil
}
