package models

import (
	"time"
)

// Incident - сообщение жителя о происшествии
type Incident struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Latitude    *float64  `json:"latitude,omitempty"`
	Longitude   *float64  `json:"longitude,omitempty"`
	IsAnonymous bool      `json:"isAnonymous"`
	ReportedAt  time.Time `json:"reportedAt"`
}
