package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SocialPlatforms are the keys accepted in Profile.Social
var SocialPlatforms = []string{"youtube", "twitter", "facebook", "linkedin", "instagram"}

// Profile is the professional profile owned by exactly one user.
// Experience and Education are kept most-recent-first.
type Profile struct {
	ID             uuid.UUID         `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID         uuid.UUID         `gorm:"type:varchar(36);not null;uniqueIndex" json:"-"`
	User           ProfileOwner      `gorm:"foreignKey:UserID;-:migration" json:"user"`
	Company        string            `gorm:"size:255" json:"company,omitempty"`
	Website        string            `gorm:"size:255" json:"website,omitempty"`
	Location       string            `gorm:"size:255" json:"location,omitempty"`
	Status         string            `gorm:"size:255;not null" json:"status"`
	Skills         []string          `gorm:"type:text;serializer:json" json:"skills"`
	Bio            string            `gorm:"type:text" json:"bio,omitempty"`
	GitHubUsername string            `gorm:"column:github_username;size:255" json:"githubusername,omitempty"`
	Social         map[string]string `gorm:"type:text;serializer:json" json:"social,omitempty"`
	Experience     []Experience      `gorm:"foreignKey:ProfileID" json:"experience"`
	Education      []Education       `gorm:"foreignKey:ProfileID" json:"education"`
	CreatedAt      time.Time         `json:"date"`
	UpdatedAt      time.Time         `json:"-"`
}

// ProfileOwner is the slice of the owning user embedded in profile responses
type ProfileOwner struct {
	ID     uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	Name   string    `gorm:"not null" json:"name"`
	Avatar string    `gorm:"size:255" json:"avatar"`
}

// TableName points ProfileOwner at the users table
func (ProfileOwner) TableName() string {
	return "users"
}

// Experience is one entry of a profile's work history
type Experience struct {
	ID          uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	ProfileID   uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"-"`
	Seq         int64      `gorm:"not null" json:"-"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Company     string     `gorm:"size:255;not null" json:"company"`
	Location    string     `gorm:"size:255" json:"location,omitempty"`
	From        time.Time  `gorm:"column:from_date;not null" json:"from"`
	To          *time.Time `gorm:"column:to_date" json:"to"`
	Current     bool       `json:"current"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
}

// Education is one entry of a profile's schooling
type Education struct {
	ID           uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	ProfileID    uuid.UUID  `gorm:"type:varchar(36);not null;index" json:"-"`
	Seq          int64      `gorm:"not null" json:"-"`
	School       string     `gorm:"size:255;not null" json:"school"`
	Degree       string     `gorm:"size:255;not null" json:"degree"`
	FieldOfStudy string     `gorm:"column:field_of_study;size:255;not null" json:"fieldofstudy"`
	From         time.Time  `gorm:"column:from_date;not null" json:"from"`
	To           *time.Time `gorm:"column:to_date" json:"to"`
	Current      bool       `json:"current"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// AfterFind keeps list fields serialized as [] rather than null
func (p *Profile) AfterFind(tx *gorm.DB) error {
	if p.Skills == nil {
		p.Skills = []string{}
	}
	if p.Experience == nil {
		p.Experience = []Experience{}
	}
	if p.Education == nil {
		p.Education = []Education{}
	}
	return nil
}

func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
