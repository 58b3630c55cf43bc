package users

import (
	"errors"
	"strings"
	"time"
)

var ErrUserNotFound = errors.New("user not found")

const DefaultDisplayName = "Athlete"

type User struct {
	ID              string     `json:"id"`
	Email           *string    `json:"email"`
	FirstName       *string    `json:"firstName"`
	LastName        *string    `json:"lastName"`
	ProfileImageURL *string    `json:"profileImageUrl"`
	DisplayName     string     `json:"displayName"`
	CurrentLevel    int        `json:"currentLevel"`
	LevelProgress   int        `json:"levelProgress"`
	Streak          int        `json:"streak"`
	LastWorkoutDate *time.Time `json:"lastWorkoutDate"`
	Weight          *int       `json:"weight"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// UpsertParams carries the identity fields owned by the authentication provider.
type UpsertParams struct {
	ID              string
	Email           string
	FirstName       string
	LastName        string
	ProfileImageURL string
}

type UpdateProfileRequest struct {
	DisplayName   *string `json:"displayName,omitempty" validate:"omitempty,min=1,max=60"`
	Weight        *int    `json:"weight,omitempty" validate:"omitempty,min=0,max=500"`
	CurrentLevel  *int    `json:"currentLevel,omitempty" validate:"omitempty,min=0,max=4"`
	LevelProgress *int    `json:"levelProgress,omitempty" validate:"omitempty,min=0,max=100"`
}

// DisplayNameFor builds the name shown for a new user: first and last name
// when both are known, otherwise whichever is present.
func DisplayNameFor(firstName, lastName string) string {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	switch {
	case firstName != "" && lastName != "":
		return firstName + " " + lastName
	case firstName != "":
		return firstName
	case lastName != "":
		return lastName
	default:
		return DefaultDisplayName
	}
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
