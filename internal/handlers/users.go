package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"GOTRIP_BACK-END/internal/config"
	"GOTRIP_BACK-END/internal/dto"
	"GOTRIP_BACK-END/internal/middleware"
	"GOTRIP_BACK-END/internal/models"
	"GOTRIP_BACK-END/internal/repository"
	"GOTRIP_BACK-END/internal/utils"
)

// UsersHandler handles registration, login and password changes
type UsersHandler struct {
	users  repository.UserStore
	config *config.Config
}

// NewUsersHandler creates a new UsersHandler
func NewUsersHandler(users repository.UserStore, cfg *config.Config) *UsersHandler {
	return &UsersHandler{users: users, config: cfg}
}

// validatePassword enforces the password strength policy: at least six
// characters and at least one character that is not a lowercase letter.
func validatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}
	for _, r := range password {
		if !unicode.IsLower(r) {
			return nil
		}
	}
	return fmt.Errorf("password does not meet strength requirements")
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new user account with fullname, username, email, and password
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "User registration data"
// @Success 201 {object} dto.UserResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Duplicate username or email"
// @Failure 500 {object} dto.ErrorResponse "Validation failure"
// @Router /users/register [post]
func (h *UsersHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.RegisterRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	// Validation failures are a generic 500, not a 4xx. Clients of the
	// original API depend on that status.
	if req.Username == "" || req.Email == "" || req.Password == "" {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "username, email and password are required", "")
		return
	}
	if err := validatePassword(req.Password); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "role must be user or admin", "")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to hash password", err.Error())
		return
	}

	user := models.User{
		ID:           uuid.New(),
		Fullname:     req.Fullname,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         role,
		CreatedAt:    time.Now(),
	}

	if err := h.users.Create(r.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "duplicate user", "username or email already registered")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to create user", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.UserResponse{
		ID:       user.ID.String(),
		Fullname: user.Fullname,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate with username and password, returns a signed session token
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Unknown username or wrong password"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /users/login [post]
func (h *UsersHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.LoginRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	user, err := h.users.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "user is not registered", "")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to look up user", err.Error())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "password does not match", "")
		return
	}

	token, err := middleware.GenerateToken(user, &h.config.JWT)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to generate token", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{Token: token})
}

// ChangePassword handles password changes for the authenticated user
// @Summary Change password
// @Description Re-authenticate with the current password, then store a new hash
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} dto.SuccessResponse "Password updated"
// @Failure 400 {object} dto.ErrorResponse "Current password does not match"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Token references a deleted user"
// @Router /users/change-password [post]
func (h *UsersHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	var req dto.ChangePasswordRequest
	if err := utils.DecodeJSONRequest(w, r, &req); err != nil {
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "User not found", "")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to look up user", err.Error())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "password does not match", "")
		return
	}

	if err := validatePassword(req.NewPassword); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, err.Error(), "")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to hash password", err.Error())
		return
	}

	if err := h.users.UpdatePassword(r.Context(), userID, string(hashedPassword)); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to update password", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.SuccessResponse{Success: true, Message: "password updated"})
}

// Profile returns the authenticated user's account summary
// @Summary Get user profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Router /users/profile [get]
func (h *UsersHandler) Profile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "User not authenticated")
		return
	}

	user, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "User not found", "")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to look up user", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.UserResponse{
		ID:       user.ID.String(),
		Fullname: user.Fullname,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
}
