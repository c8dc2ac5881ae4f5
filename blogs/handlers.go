package blogs

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/user/blogstack-go/apperror"
	"github.com/user/blogstack-go/auth"
)

// BlogHandlers exposes the BlogService over HTTP.
type BlogHandlers struct {
	service *BlogService
}

// NewBlogHandlers creates new BlogHandlers.
func NewBlogHandlers(service *BlogService) *BlogHandlers {
	return &BlogHandlers{service: service}
}

// RegisterRoutes attaches the blog routes to a router.
func (h *BlogHandlers) RegisterRoutes(r chi.Router) {
	r.Post("/", h.HandleCreateBlog())
	r.Get("/", h.HandleListBlogs())
	r.Get("/{id}", h.HandleGetBlog())
	r.Put("/{id}", h.HandleUpdateBlog())
	r.Delete("/{id}", h.HandleDeleteBlog())
}

func blogIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, apperror.NewBadRequestError("invalid blog id", err)
	}
	return id, nil
}

// HandleCreateBlog godoc
// @Summary Create a new blog post
// @Tags Blogs
// @Accept json
// @Produce json
// @Param blogBody body blogs.CreateBlogRequest true "Blog post details"
// @Success 201 {object} blogs.Blog
// @Failure 400 {object} apperror.ErrorResponse "Invalid input"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /blogs [post]
func (h *BlogHandlers) HandleCreateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateBlogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Title == "" || req.Content == "" || req.AuthorID == 0 {
			auth.WriteError(w, r, apperror.NewBadRequestError("title, content, and author_id are required", nil))
			return
		}

		blog, err := h.service.CreateBlog(r.Context(), req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusCreated, blog)
	}
}

// HandleListBlogs godoc
// @Summary List blog posts with pagination
// @Tags Blogs
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Param limit query int false "page size" default(10)
// @Success 200 {array} blogs.Blog
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /blogs [get]
func (h *BlogHandlers) HandleListBlogs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page := queryIntDefault(r, "page", 1)
		limit := queryIntDefault(r, "limit", 10)
		if page < 1 {
			page = 1
		}
		if limit < 1 {
			limit = 10
		}

		blogList, err := h.service.ListBlogs(r.Context(), page, limit)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, blogList)
	}
}

// HandleGetBlog godoc
// @Summary Fetch a specific blog post
// @Tags Blogs
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} blogs.Blog
// @Failure 404 {object} apperror.ErrorResponse "Blog not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /blogs/{id} [get]
func (h *BlogHandlers) HandleGetBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := blogIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		blog, err := h.service.GetBlog(r.Context(), id)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, blog)
	}
}

// HandleUpdateBlog godoc
// @Summary Edit an existing blog post
// @Tags Blogs
// @Accept json
// @Produce json
// @Param id path int true "Blog ID"
// @Param blogBody body blogs.UpdateBlogRequest true "Fields to update"
// @Success 200 {object} blogs.Blog
// @Failure 400 {object} apperror.ErrorResponse "Invalid input"
// @Failure 404 {object} apperror.ErrorResponse "Blog not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /blogs/{id} [put]
func (h *BlogHandlers) HandleUpdateBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := blogIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		var req UpdateBlogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Title == "" || req.Content == "" {
			auth.WriteError(w, r, apperror.NewBadRequestError("title and content are required", nil))
			return
		}

		blog, err := h.service.UpdateBlog(r.Context(), id, req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, blog)
	}
}

// HandleDeleteBlog godoc
// @Summary Delete a blog post
// @Tags Blogs
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} auth.MessageResponse
// @Failure 404 {object} apperror.ErrorResponse "Blog not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /blogs/{id} [delete]
func (h *BlogHandlers) HandleDeleteBlog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := blogIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		if err := h.service.DeleteBlog(r.Context(), id); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, auth.MessageResponse{Message: "blog deleted"})
	}
}

// queryIntDefault parses an integer query parameter, falling back to a
// default on absence or garbage.
func queryIntDefault(r *http.Request, key string, defaultValue int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return value
}
