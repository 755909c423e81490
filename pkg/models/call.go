package models

import (
	"time"

	"github.com/lib/pq"
)

// Call is an analyzed call recording. The transcription service extracts
// the same preference attributes a client record carries, so a call is
// effectively a lead that can be matched against inventory.
type Call struct {
	ID                string         `json:"id" db:"id"`
	AgentID           string         `json:"agent_id" db:"agent_id"`
	ClientName        string         `json:"client_name" db:"client_name"`
	PhoneNumber       string         `json:"phone_number" db:"phone_number"`
	Transcription     string         `json:"transcription" db:"transcription"`
	Summary           string         `json:"summary" db:"summary"`
	Intent            Intent         `json:"intent" db:"intent"`
	Location          string         `json:"location" db:"location"`
	PropertyTypes     pq.StringArray `json:"property_types" db:"property_types"`
	Rooms             *int           `json:"rooms,omitempty" db:"rooms"`
	Area              *float64       `json:"area,omitempty" db:"area"`
	Price             *float64       `json:"price,omitempty" db:"price"`
	Condition         string         `json:"condition" db:"condition"`
	Floor             *int           `json:"floor,omitempty" db:"floor"`
	Parking           *bool          `json:"parking,omitempty" db:"parking"`
	Balcony           *bool          `json:"balcony,omitempty" db:"balcony"`
	PreApproval       string         `json:"pre_approval" db:"pre_approval"`
	FollowUps         pq.StringArray `json:"follow_ups" db:"follow_ups"`
	Positives         pq.StringArray `json:"positives" db:"positives"`
	Negatives         pq.StringArray `json:"negatives" db:"negatives"`
	ImprovementPoints pq.StringArray `json:"improvement_points" db:"improvement_points"`
	Issues            pq.StringArray `json:"issues" db:"issues"`
	CreatedAt         time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at" db:"updated_at"`
}
