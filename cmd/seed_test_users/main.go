package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/pageza/devconnector/backend/config"
	"github.com/pageza/devconnector/backend/internal/database"
	"github.com/pageza/devconnector/backend/internal/service"
	"github.com/pageza/devconnector/backend/internal/types"
)

const seedPassword = "testpassword123"

type seedDeveloper struct {
	name       string
	email      string
	profile    types.ProfileRequest
	experience []types.ExperienceRequest
	education  []types.EducationRequest
}

func ptr(s string) *string { return &s }

var developers = []seedDeveloper{
	{
		name:  "John Doe",
		email: "john.doe@example.com",
		profile: types.ProfileRequest{
			Status:         ptr("Senior Developer"),
			Skills:         ptr("Go, PostgreSQL, Docker"),
			Company:        ptr("Acme"),
			Location:       ptr("Boston, MA"),
			GitHubUsername: ptr("octocat"),
			Twitter:        ptr("https://twitter.com/johndoe"),
		},
		experience: []types.ExperienceRequest{
			{Title: "Backend Engineer", Company: "Initech", From: "2015-03-01", To: "2019-08-31"},
			{Title: "Senior Developer", Company: "Acme", From: "2019-09-01", Current: true},
		},
		education: []types.EducationRequest{
			{School: "MIT", Degree: "BSc", FieldOfStudy: "Computer Science", From: "2011-09-01", To: "2015-06-01"},
		},
	},
	{
		name:  "Jane Smith",
		email: "jane.smith@example.com",
		profile: types.ProfileRequest{
			Status:  ptr("Student or Learning"),
			Skills:  ptr("HTML,CSS,JavaScript"),
			Bio:     ptr("Learning to build things for the web"),
			Website: ptr("https://jane.example.com"),
		},
	},
	{
		name:  "Sam Lee",
		email: "sam.lee@example.com",
		profile: types.ProfileRequest{
			Status:  ptr("Manager"),
			Skills:  ptr("Leadership, Kotlin"),
			Company: ptr("Globex"),
		},
		experience: []types.ExperienceRequest{
			{Title: "Engineering Manager", Company: "Globex", Location: "Remote", From: "2018-01-15", Current: true},
		},
	},
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.RunMigrations(db); err != nil {
		log.Error("migration failed", "error", err)
		os.Exit(1)
	}

	tokens := service.NewTokenService(service.TokenConfig{Secret: cfg.Auth.JWTSecret, TTL: cfg.Auth.TokenTTL})
	auth := service.NewAuthService(db, service.NewPasswordHasher(cfg.Auth.BcryptCost), tokens)
	profiles := service.NewProfileService(db)

	ctx := context.Background()
	for _, dev := range developers {
		token, err := auth.Register(ctx, dev.name, dev.email, seedPassword)
		if errors.Is(err, service.ErrDuplicateUser) {
			log.Info("developer already seeded", "email", dev.email)
			continue
		}
		if err != nil {
			log.Error("failed to register developer", "email", dev.email, "error", err)
			os.Exit(1)
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			log.Error("failed to read seeded user id", "email", dev.email, "error", err)
			os.Exit(1)
		}

		if _, err := profiles.UpsertProfile(ctx, userID, service.ProfileFieldsFromRequest(dev.profile)); err != nil {
			log.Error("failed to create profile", "email", dev.email, "error", err)
			os.Exit(1)
		}
		for _, exp := range dev.experience {
			if _, err := profiles.AddExperience(ctx, userID, exp); err != nil {
				log.Error("failed to add experience", "email", dev.email, "error", err)
				os.Exit(1)
			}
		}
		for _, edu := range dev.education {
			if _, err := profiles.AddEducation(ctx, userID, edu); err != nil {
				log.Error("failed to add education", "email", dev.email, "error", err)
				os.Exit(1)
			}
		}
		log.Info("seeded developer", "email", dev.email, "user_id", userID)
	}

	log.Info("seeding complete", "password", seedPassword)
}
