package types

// RegisterRequest represents the request body for POST /api/users
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the request body for POST /api/auth
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileRequest represents the request body for creating or updating a profile.
// Skills arrives as a comma separated string; the social platforms arrive flat.
type ProfileRequest struct {
	Company        *string `json:"company"`
	Website        *string `json:"website"`
	Location       *string `json:"location"`
	Bio            *string `json:"bio"`
	Status         *string `json:"status"`
	GitHubUsername *string `json:"githubusername"`
	Skills         *string `json:"skills"`
	YouTube        *string `json:"youtube"`
	Twitter        *string `json:"twitter"`
	Facebook       *string `json:"facebook"`
	LinkedIn       *string `json:"linkedin"`
	Instagram      *string `json:"instagram"`
}

// ExperienceRequest represents the request body for PUT /api/profile/experience
type ExperienceRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// EducationRequest represents the request body for PUT /api/profile/education
type EducationRequest struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// TokenResponse is returned by registration and login
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse carries a single human readable message
type MessageResponse struct {
	Msg string `json:"msg"`
}
