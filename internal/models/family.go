package models

import "time"

// MemberStatus - статус безопасности члена семьи
type MemberStatus string

const (
	MemberStatusSafe    MemberStatus = "safe"
	MemberStatusDanger  MemberStatus = "danger"
	MemberStatusUnknown MemberStatus = "unknown"
)

type Household struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Member struct {
	ID                int64        `json:"id"`
	HouseholdID       int64        `json:"householdId"`
	Name              string       `json:"name"`
	Contact           *string      `json:"contact,omitempty"`
	LastKnownLocation *string      `json:"lastKnownLocation,omitempty"`
	Status            MemberStatus `json:"status"`
}

// CheckIn - отметка члена семьи о том, что он в безопасности (или нет)
type CheckIn struct {
	ID        int64     `json:"id"`
	MemberID  int64     `json:"memberId"`
	Location  *string   `json:"location,omitempty"`
	IsSafe    bool      `json:"isSafe"`
	Timestamp time.Time `json:"timestamp"`
}
