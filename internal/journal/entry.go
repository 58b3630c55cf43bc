package journal

import (
	"errors"
	"time"
)

var (
	ErrEntryNotFound = errors.New("journal entry not found")
	ErrNotOwner      = errors.New("journal entry belongs to another user")
)

const (
	DefaultListLimit = 30
	MaxListLimit     = 365
)

type Entry struct {
	ID          int       `json:"id"`
	UserID      string    `json:"userId"`
	Date        time.Time `json:"date"`
	EnergyLevel int       `json:"energyLevel"`
	Mood        int       `json:"mood"`
	Notes       *string   `json:"notes"`
	PhotoURL    *string   `json:"photoUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

type NewEntryRequest struct {
	Date        *time.Time `json:"date,omitempty"`
	EnergyLevel int        `json:"energyLevel" validate:"required,min=1,max=10"`
	Mood        int        `json:"mood" validate:"required,min=1,max=10"`
	Notes       *string    `json:"notes,omitempty" validate:"omitempty,max=4000"`
	PhotoURL    *string    `json:"photoUrl,omitempty" validate:"omitempty,url"`
}

type UpdateEntryRequest struct {
	Date        *time.Time `json:"date,omitempty"`
	EnergyLevel *int       `json:"energyLevel,omitempty" validate:"omitempty,min=1,max=10"`
	Mood        *int       `json:"mood,omitempty" validate:"omitempty,min=1,max=10"`
	Notes       *string    `json:"notes,omitempty" validate:"omitempty,max=4000"`
	PhotoURL    *string    `json:"photoUrl,omitempty" validate:"omitempty,url"`
}

func (req UpdateEntryRequest) apply(e *Entry) {
	if req.Date != nil {
		e.Date = *req.Date
	}
	if req.EnergyLevel != nil {
		e.EnergyLevel = *req.EnergyLevel
	}
	if req.Mood != nil {
		e.Mood = *req.Mood
	}
	if req.Notes != nil {
		e.Notes = req.Notes
	}
	if req.PhotoURL != nil {
		e.PhotoURL = req.PhotoURL
	}
}
