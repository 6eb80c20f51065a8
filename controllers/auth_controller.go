package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"sprout_server/helpers"
	"sprout_server/middleware"
	"sprout_server/services"
)

// AuthController struct
type AuthController struct {
	Auth     *services.AuthService
	Profiles *services.UserProfileService
}

// NewAuthController initializes the auth controller
func NewAuthController(auth *services.AuthService, profiles *services.UserProfileService) *AuthController {
	return &AuthController{Auth: auth, Profiles: profiles}
}

// SignUp registers a new account and returns a session token with the fresh profile
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var request struct {
		EmailID         string `json:"emailId"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
		Name            string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Confirmation mismatch never reaches the store
	if request.ConfirmPassword != "" && request.ConfirmPassword != request.Password {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Passwords do not match")
		return
	}

	profile, token, err := c.Auth.SignUp(r.Context(), request.EmailID, request.Password, request.Name)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidEmail), errors.Is(err, services.ErrWeakPassword):
			helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, services.ErrEmailTaken):
			helpers.WriteJSONError(w, http.StatusConflict, err.Error())
		default:
			log.Printf("❌ Signup failed: %v", err)
			helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to sign up")
		}
		return
	}

	helpers.WriteJSONResponse(w, http.StatusCreated, map[string]interface{}{
		"token":   token,
		"profile": profile,
	})
}

// SignIn verifies credentials and returns a session token with the profile
func (c *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	var request struct {
		EmailID  string `json:"emailId"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if request.EmailID == "" || request.Password == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Missing required fields: emailId or password")
		return
	}

	profile, token, err := c.Auth.SignIn(r.Context(), request.EmailID, request.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			helpers.WriteJSONError(w, http.StatusUnauthorized, err.Error())
			return
		}
		log.Printf("❌ Signin failed: %v", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]interface{}{
		"token":   token,
		"profile": profile,
	})
}

// Me returns the profile behind the presented token
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusUnauthorized, "valid authentication required")
		return
	}

	profile, err := c.Profiles.GetUserProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Profile not found")
			return
		}
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, profile)
}
