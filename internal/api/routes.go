package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/pageza/devconnector/backend/internal/middleware"
	"github.com/pageza/devconnector/backend/internal/service"
)

// Dependencies are the collaborators the route table needs
type Dependencies struct {
	Auth     service.IAuthService
	Tokens   middleware.TokenVerifier
	Profiles service.IProfileService
	GitHub   service.IGitHubService
	Health   HealthChecker
	// RateLimiter guards the credential routes; nil disables it
	RateLimiter *middleware.RateLimiter
	TokenHeader string
	Logger      *slog.Logger
}

// RegisterRoutes mounts /health and every /api route on r
func RegisterRoutes(r gin.IRouter, deps Dependencies) {
	log := deps.Logger
	requireAuth := middleware.AuthMiddleware(deps.Tokens, deps.TokenHeader)

	credentials := []gin.HandlerFunc{}
	if deps.RateLimiter != nil {
		credentials = append(credentials, deps.RateLimiter.Middleware())
	}
	limited := func(handlers ...gin.HandlerFunc) []gin.HandlerFunc {
		return append(append([]gin.HandlerFunc{}, credentials...), handlers...)
	}

	health := NewHealthHandler(deps.Health, log)
	users := NewUsersHandler(deps.Auth, log)
	auth := NewAuthHandler(deps.Auth, log)
	profiles := NewProfileHandler(deps.Profiles, log)
	github := NewGitHubHandler(deps.GitHub, log)

	r.GET("/health", health.Health)

	apiGroup := r.Group("/api")

	apiGroup.POST("/users", limited(RegisterValidation(), users.Register)...)

	authGroup := apiGroup.Group("/auth")
	{
		authGroup.GET("", requireAuth, auth.GetCurrentUser)
		authGroup.POST("", limited(LoginValidation(), auth.Login)...)
	}

	profileGroup := apiGroup.Group("/profile")
	{
		profileGroup.GET("", profiles.ListProfiles)
		profileGroup.POST("", requireAuth, ProfileValidation(), profiles.UpsertProfile)
		profileGroup.DELETE("", requireAuth, profiles.DeleteAccount)
		profileGroup.GET("/me", requireAuth, profiles.GetMyProfile)
		profileGroup.GET("/user/:user_id", profiles.GetProfileByUser)
		profileGroup.PUT("/experience", requireAuth, ExperienceValidation(), profiles.AddExperience)
		profileGroup.DELETE("/experience/:exp_id", requireAuth, profiles.RemoveExperience)
		profileGroup.PUT("/education", requireAuth, EducationValidation(), profiles.AddEducation)
		profileGroup.DELETE("/education/:edu_id", requireAuth, profiles.RemoveEducation)
		profileGroup.GET("/github/:username", github.ListRepos)
	}
}
