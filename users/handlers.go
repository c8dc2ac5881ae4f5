package users

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/user/blogstack-go/apperror"
	"github.com/user/blogstack-go/auth"
)

// UserHandlers exposes the UserService over HTTP.
type UserHandlers struct {
	service *UserService
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{service: service}
}

// RegisterRoutes attaches the user routes to a router.
func (h *UserHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/{id}", h.HandleGetUser())
	r.Put("/{id}", h.HandleUpdateUser())
	r.Delete("/{id}", h.HandleDeleteUser())
}

// userIDParam parses the {id} URL parameter.
func userIDParam(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, apperror.NewBadRequestError("invalid user id", err)
	}
	return id, nil
}

// HandleGetUser godoc
// @Summary Get user details
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} users.UserResponse
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /users/{id} [get]
func (h *UserHandlers) HandleGetUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		user, err := h.service.GetUser(r.Context(), id)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, user)
	}
}

// HandleUpdateUser godoc
// @Summary Edit user details
// @Tags Users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param userBody body users.UpdateUserRequest true "Fields to update"
// @Success 200 {object} users.UserResponse
// @Failure 400 {object} apperror.ErrorResponse "Invalid input or duplicate username"
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /users/{id} [put]
func (h *UserHandlers) HandleUpdateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Username == "" {
			auth.WriteError(w, r, apperror.NewBadRequestError("username is required", nil))
			return
		}

		user, err := h.service.UpdateUsername(r.Context(), id, req.Username)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, user)
	}
}

// HandleDeleteUser godoc
// @Summary Delete user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} auth.MessageResponse
// @Failure 404 {object} apperror.ErrorResponse "User not found"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /users/{id} [delete]
func (h *UserHandlers) HandleDeleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := userIDParam(r)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		if err := h.service.DeleteUser(r.Context(), id); err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, auth.MessageResponse{Message: "user deleted"})
	}
}

// HandleHealth godoc
// @Summary Service health check
// @Tags Users
// @Produce json
// @Success 200 {object} users.HealthResponse
// @Router /health [get]
func (h *UserHandlers) HandleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		auth.WriteJSON(w, http.StatusOK, HealthResponse{
			Status:    "OK",
			Message:   "User service is running",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}
