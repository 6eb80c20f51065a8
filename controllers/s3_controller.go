package controllers

import (
	"encoding/json"
	"log"
	"net/http"

	"sprout_server/helpers"
	"sprout_server/services"
)

// S3Controller struct
type S3Controller struct {
	S3 *services.S3Service
}

// NewS3Controller initializes the S3 controller
func NewS3Controller(s3Service *services.S3Service) *S3Controller {
	return &S3Controller{S3: s3Service}
}

// GenerateUploadURL returns a presigned PUT URL for a profile picture
func (c *S3Controller) GenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		FileName string `json:"fileName"`
		FileType string `json:"fileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.FileName == "" || payload.FileType == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Missing required fields: fileName or fileType")
		return
	}

	url, key, err := c.S3.GenerateUploadURL(r.Context(), payload.FileName, payload.FileType)
	if err != nil {
		log.Printf("❌ Error generating upload URL: %v", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to generate upload URL")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url, "key": key})
}

// GenerateReadURL returns a presigned GET URL for a stored picture
func (c *S3Controller) GenerateReadURL(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Key == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	url, err := c.S3.GenerateReadURL(r.Context(), payload.Key)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to generate read URL")
		return
	}

	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"url": url})
}
