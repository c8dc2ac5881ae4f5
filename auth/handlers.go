package auth

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/user/blogstack-go/apperror"
)

// Handlers exposes the AuthService over HTTP.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary User Registration
// @Description Registers a new user with a policy-checked password.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 201 {object} auth.MessageResponse "User registered"
// @Failure 400 {object} apperror.ErrorResponse "Missing fields, policy violation, or duplicate username"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if _, err := h.service.Register(r.Context(), req); err != nil {
			WriteError(w, r, err)
			return
		}

		WriteJSON(w, http.StatusCreated, MessageResponse{Message: "user registered successfully"})
	}
}

// HandleLogin godoc
// @Summary User Login
// @Description Logs in an existing user and returns a bearer token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.TokenResponse "Login successful"
// @Failure 400 {object} apperror.ErrorResponse "Missing fields or unknown user"
// @Failure 401 {object} apperror.ErrorResponse "Invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /auth/login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			// The public API reports an unknown username as a plain bad
			// request, not a 404. The internal error kind stays not-found.
			if apperror.IsNotFound(err) {
				WriteError(w, r, apperror.NewBadRequestError("user not found", nil))
				return
			}
			WriteError(w, r, err)
			return
		}

		WriteJSON(w, http.StatusOK, resp)
	}
}

// HandleLogout godoc
// @Summary User Logout
// @Description Acknowledges logout. Tokens are not revocable server-side;
// a valid token stays usable until its natural expiry.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} auth.MessageResponse "Logged out"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Router /auth/logout [post]
func (h *Handlers) HandleLogout() http.HandlerFunc {
	// The token middleware has already verified the bearer token by the
	// time this runs. Logout is stateless: nothing is persisted and
	// repeated calls succeed identically.
	return func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, MessageResponse{Message: "logged out successfully"})
	}
}

// WriteJSON serializes data to the response with the given status.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError writes a standardized error response. Non-AppError values are
// wrapped as internal errors; 5xx causes are logged, never returned.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}

	if appErr.StatusCode() >= http.StatusInternalServerError {
		log.Printf("Error processing %s %s: %v", r.Method, r.URL.Path, appErr)
	}

	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
