package comments

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/blogstack-go/apperror"
	"github.com/user/blogstack-go/auth"
)

// CommentHandlers exposes the CommentService over HTTP.
type CommentHandlers struct {
	service *CommentService
}

// NewCommentHandlers creates new CommentHandlers.
func NewCommentHandlers(service *CommentService) *CommentHandlers {
	return &CommentHandlers{service: service}
}

// RegisterRoutes attaches the comment routes to a router.
func (h *CommentHandlers) RegisterRoutes(r chi.Router) {
	r.Post("/", h.HandleAddComment())
	r.Get("/", h.HandleListComments())
}

// HandleAddComment godoc
// @Summary Add a comment to a blog post
// @Tags Comments
// @Accept json
// @Produce json
// @Param commentBody body comments.NewCommentRequest true "Comment details"
// @Success 201 {object} comments.Comment
// @Failure 400 {object} apperror.ErrorResponse "Invalid input"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /comments [post]
func (h *CommentHandlers) HandleAddComment() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NewCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Content == "" || req.PostID == 0 || req.AuthorID == 0 {
			auth.WriteError(w, r, apperror.NewBadRequestError("content, post_id, and author_id are required", nil))
			return
		}

		comment, err := h.service.AddComment(r.Context(), req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusCreated, comment)
	}
}

// HandleListComments godoc
// @Summary List comments for a blog post
// @Tags Comments
// @Produce json
// @Param post_id query int true "Blog post ID"
// @Success 200 {array} comments.Comment
// @Failure 400 {object} apperror.ErrorResponse "Missing or invalid post_id"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /comments [get]
func (h *CommentHandlers) HandleListComments() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := strconv.Atoi(r.URL.Query().Get("post_id"))
		if err != nil || postID < 1 {
			auth.WriteError(w, r, apperror.NewBadRequestError("post_id query parameter is required", nil))
			return
		}

		result, err := h.service.ListByPost(r.Context(), postID)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, result)
	}
}
