package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sprout_server/middleware"
	"sprout_server/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

func newTestProfileController() *UserProfileController {
	return NewUserProfileController(&services.UserProfileService{})
}

func TestSaveUserProfile_RejectsOtherUsersProfile(t *testing.T) {
	controller := newTestProfileController()
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/profiles", strings.NewReader(`{"userId":"bob","name":"Bob"}`))
	r = r.WithContext(middleware.WithUserID(r.Context(), "alice"))

	controller.SaveUserProfile(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSaveUserProfile_RejectsTooManySkills(t *testing.T) {
	skills := make([]string, 0, 26)
	for i := 0; i < 26; i++ {
		skills = append(skills, "Skill")
	}
	body := `{"userId":"alice","skillsToTeach":["` + strings.Join(skills, `","`) + `"]}`

	controller := newTestProfileController()
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/profiles", strings.NewReader(body))
	r = r.WithContext(middleware.WithUserID(r.Context(), "alice"))

	controller.SaveUserProfile(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSaveUserProfile_RejectsEmptySkillEntries(t *testing.T) {
	controller := newTestProfileController()
	w := httptest.NewRecorder()
	r := httptest.NewRequest("POST", "/api/profiles", strings.NewReader(`{"userId":"alice","skillsToLearn":["Go",""]}`))
	r = r.WithContext(middleware.WithUserID(r.Context(), "alice"))

	controller.SaveUserProfile(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateUserProfile_RejectsOtherUsersProfile(t *testing.T) {
	controller := newTestProfileController()
	w := httptest.NewRecorder()
	r := httptest.NewRequest("PATCH", "/api/profiles/bob", strings.NewReader(`{"bio":"hi"}`))
	r = r.WithContext(middleware.WithUserID(r.Context(), "alice"))
	r = mux.SetURLVars(r, map[string]string{"userId": "bob"})

	controller.UpdateUserProfile(w, r)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestUpdateUserProfile_RejectsOversizedBio(t *testing.T) {
	controller := newTestProfileController()
	w := httptest.NewRecorder()
	bio := strings.Repeat("x", 501)
	r := httptest.NewRequest("PATCH", "/api/profiles/alice", strings.NewReader(`{"bio":"`+bio+`"}`))
	r = r.WithContext(middleware.WithUserID(r.Context(), "alice"))
	r = mux.SetURLVars(r, map[string]string{"userId": "alice"})

	controller.UpdateUserProfile(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
