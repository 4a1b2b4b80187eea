package models

import "time"

// University defines the university model based on the 'universities' table
type University struct {
	ID              int64     `json:"id" db:"id"`
	Name            string    `json:"name" db:"name"`
	District        string    `json:"district" db:"district"`
	EstablishedYear int       `json:"establishedYear" db:"established_year"`
	Type            string    `json:"type" db:"type"`
	ContactEmail    string    `json:"contactEmail" db:"contact_email"`
	ContactPhone    string    `json:"contactPhone" db:"contact_phone"`
	Address         string    `json:"address" db:"address"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}
