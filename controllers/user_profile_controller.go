package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"sprout_server/helpers"
	"sprout_server/middleware"
	"sprout_server/models"
	"sprout_server/services"

	"github.com/gorilla/mux"
)

// UserProfileController struct
type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// NewUserProfileController initializes the user profile controller
func NewUserProfileController(service *services.UserProfileService) *UserProfileController {
	return &UserProfileController{UserProfileService: service}
}

// SaveUserProfile stores the full profile document (the onboarding save).
// Only the owner may write their profile.
func (c *UserProfileController) SaveUserProfile(w http.ResponseWriter, r *http.Request) {
	var profile models.UserProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())
	if profile.UserID == "" {
		profile.UserID = userID
	}
	if profile.UserID != userID {
		helpers.WriteJSONError(w, http.StatusForbidden, "Cannot modify another user's profile")
		return
	}

	if err := validateProfile(profile); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := c.UserProfileService.AddUserProfile(r.Context(), profile)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to save profile")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, saved)
}

// GetUserProfileByID fetches a profile by its user id
func (c *UserProfileController) GetUserProfileByID(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "userId is required")
		return
	}

	profile, err := c.UserProfileService.GetUserProfile(r.Context(), userID)
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

// GetUserProfileByEmail fetches a profile through the email GSI
func (c *UserProfileController) GetUserProfileByEmail(w http.ResponseWriter, r *http.Request) {
	emailID := mux.Vars(r)["emailId"]
	if emailID == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "emailId is required")
		return
	}

	profile, err := c.UserProfileService.GetUserProfileByEmail(r.Context(), emailID)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}
	if profile == nil {
		helpers.WriteJSONError(w, http.StatusNotFound, "Profile not found")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, profile)
}

// UpdateUserProfile applies a partial update to the caller's own profile
func (c *UserProfileController) UpdateUserProfile(w http.ResponseWriter, r *http.Request) {
	targetID := mux.Vars(r)["userId"]
	userID, _ := middleware.UserIDFromContext(r.Context())
	if targetID != userID {
		helpers.WriteJSONError(w, http.StatusForbidden, "Cannot modify another user's profile")
		return
	}

	var updates map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&updates); err != nil || len(updates) == 0 {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	// userId is the key, never an updatable field
	delete(updates, "userId")

	if err := validateUpdates(updates); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := c.UserProfileService.UpdateUserProfile(r.Context(), userID, normalizeUpdates(updates))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, updated)
}

// DeleteUserProfile removes the caller's own profile
func (c *UserProfileController) DeleteUserProfile(w http.ResponseWriter, r *http.Request) {
	targetID := mux.Vars(r)["userId"]
	userID, _ := middleware.UserIDFromContext(r.Context())
	if targetID != userID {
		helpers.WriteJSONError(w, http.StatusForbidden, "Cannot delete another user's profile")
		return
	}

	if err := c.UserProfileService.DeleteUserProfile(r.Context(), userID); err != nil {
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to delete profile")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Profile deleted successfully", "userId": userID})
}

func validateProfile(profile models.UserProfile) error {
	if profile.UserID == "" {
		return errors.New("userId is required")
	}
	if len(profile.Bio) > models.MaxBioLength {
		return fmt.Errorf("bio must be at most %d characters", models.MaxBioLength)
	}
	if err := validateSkills("skillsToTeach", profile.SkillsToTeach); err != nil {
		return err
	}
	return validateSkills("skillsToLearn", profile.SkillsToLearn)
}

func validateSkills(field string, skills []string) error {
	if len(skills) > models.MaxSkillsPerList {
		return fmt.Errorf("%s must have at most %d entries", field, models.MaxSkillsPerList)
	}
	for _, skill := range skills {
		if skill == "" {
			return fmt.Errorf("%s must not contain empty entries", field)
		}
		if len(skill) > models.MaxSkillLength {
			return fmt.Errorf("%s entries must be at most %d characters", field, models.MaxSkillLength)
		}
	}
	return nil
}

// validateUpdates applies the same field limits to a partial update body
func validateUpdates(updates map[string]interface{}) error {
	for field, value := range updates {
		switch field {
		case "bio":
			if text, ok := value.(string); ok && len(text) > models.MaxBioLength {
				return fmt.Errorf("bio must be at most %d characters", models.MaxBioLength)
			}
		case "skillsToTeach", "skillsToLearn":
			skills, err := toStringSlice(value)
			if err != nil {
				return fmt.Errorf("%s must be a list of strings", field)
			}
			if err := validateSkills(field, skills); err != nil {
				return err
			}
		}
	}
	return nil
}

// normalizeUpdates converts JSON []interface{} skill lists into []string so
// they marshal as DynamoDB string lists.
func normalizeUpdates(updates map[string]interface{}) map[string]interface{} {
	for field, value := range updates {
		if field != "skillsToTeach" && field != "skillsToLearn" {
			continue
		}
		if skills, err := toStringSlice(value); err == nil {
			updates[field] = skills
		}
	}
	return updates
}

func toStringSlice(value interface{}) ([]string, error) {
	switch v := value.(type) {
	case []string:
		return v, nil
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, entry := range v {
			s, ok := entry.(string)
			if !ok {
				return nil, errors.New("not a string list")
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, errors.New("not a string list")
	}
}
