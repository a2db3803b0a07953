package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/devconnector/backend/internal/service"
	"github.com/pageza/devconnector/backend/internal/types"
	"github.com/pageza/devconnector/backend/internal/validation"
)

// ProfileHandler serves the profile routes
type ProfileHandler struct {
	profiles service.IProfileService
	log      *slog.Logger
}

func NewProfileHandler(profiles service.IProfileService, log *slog.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, log: log}
}

// ProfileValidation lists the checks applied to POST /api/profile
func ProfileValidation() gin.HandlerFunc {
	return validation.Body(
		validation.Check("status", "Status is required").NotEmpty(),
		validation.Check("skills", "Skills is required").NotEmpty(),
	)
}

// ExperienceValidation lists the checks applied to PUT /api/profile/experience
func ExperienceValidation() gin.HandlerFunc {
	return validation.Body(
		validation.Check("title", "Title is required").NotEmpty(),
		validation.Check("company", "Company is required").NotEmpty(),
		validation.Check("from", "From date is required").NotEmpty(),
		validation.Check("from", "From date must be a valid date").Optional().IsDate(),
		validation.Check("to", "To date must be a valid date").Optional().IsDate(),
	)
}

// EducationValidation lists the checks applied to PUT /api/profile/education
func EducationValidation() gin.HandlerFunc {
	return validation.Body(
		validation.Check("school", "School is required").NotEmpty(),
		validation.Check("degree", "Degree is required").NotEmpty(),
		validation.Check("fieldofstudy", "Field of study is required").NotEmpty(),
		validation.Check("from", "From date is required").NotEmpty(),
		validation.Check("from", "From date must be a valid date").Optional().IsDate(),
		validation.Check("to", "To date must be a valid date").Optional().IsDate(),
	)
}

// GetMyProfile returns the authenticated user's profile
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID, ok := currentUser(c, h.log)
	if !ok {
		return
	}

	profile, err := h.profiles.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpsertProfile creates or updates the authenticated user's profile
func (h *ProfileHandler) UpsertProfile(c *gin.Context) {
	userID, ok := currentUser(c, h.log)
	if !ok {
		return
	}

	var req types.ProfileRequest
	if !bindBody(c, &req) {
		return
	}

	profile, err := h.profiles.UpsertProfile(c.Request.Context(), userID, service.ProfileFieldsFromRequest(req))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListProfiles returns every profile
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profiles.ListProfiles(c.Request.Context())
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetProfileByUser returns the profile owned by the :user_id path parameter
func (h *ProfileHandler) GetProfileByUser(c *gin.Context) {
	profile, err := h.profiles.GetProfileByUser(c.Request.Context(), c.Param("user_id"))
	if errors.Is(err, service.ErrProfileNotFound) {
		respondMsg(c, http.StatusBadRequest, msgProfileNotFound)
		return
	}
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// DeleteAccount removes the authenticated user's profile and account
func (h *ProfileHandler) DeleteAccount(c *gin.Context) {
	userID, ok := currentUser(c, h.log)
	if !ok {
		return
	}

	if err := h.profiles.DeleteAccount(c.Request.Context(), userID); err != nil {
		respondError(c, h.log, err)
		return
	}
	respondMsg(c, http.StatusOK, msgUserDeleted)
}

// AddExperience prepends an experience entry
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	userID, ok := currentUser(c, h.log)
	if !ok {
		return
	}

	var req types.ExperienceRequest
	if !bindBody(c, &req) {
		return
	}

	profile, err := h.profiles.AddExperience(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RemoveExperience deletes the experience entry named by :exp_id
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	userID, ok := currentUser(c, h.log)
	if !ok {
		return
	}

	profile, err := h.profiles.RemoveExperience(c.Request.Context(), userID, c.Param("exp_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// AddEducation prepends an education entry
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	userID, ok := currentUser(c, h.log)
	if !ok {
		return
	}

	var req types.EducationRequest
	if !bindBody(c, &req) {
		return
	}

	profile, err := h.profiles.AddEducation(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// RemoveEducation deletes the education entry named by :edu_id
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	userID, ok := currentUser(c, h.log)
	if !ok {
		return
	}

	profile, err := h.profiles.RemoveEducation(c.Request.Context(), userID, c.Param("edu_id"))
	if err != nil {
		respondError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
