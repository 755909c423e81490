package models

import (
	"time"

	"github.com/lib/pq"
)

// Intent is what a client is trying to do in the market
type Intent string

const (
	IntentBuyer    Intent = "buyer"
	IntentSeller   Intent = "seller"
	IntentRenter   Intent = "renter"
	IntentLandlord Intent = "landlord"
	IntentBoth     Intent = "both"
	IntentUnknown  Intent = "unknown"
)

// SeeksProperty reports whether this intent participates in
// property-seeking match pools (buyer side of the market).
func (i Intent) SeeksProperty() bool {
	return i == IntentBuyer || i == IntentRenter || i == IntentBoth
}

// ClientStatus is the CRM lifecycle state of a client
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusProspect ClientStatus = "prospect"
	ClientStatusInactive ClientStatus = "inactive"
	ClientStatusClosed   ClientStatus = "closed"
)

// InPlay reports whether the client should still be offered inventory.
func (s ClientStatus) InPlay() bool {
	return s == ClientStatusActive || s == ClientStatusProspect || s == ""
}

// ClientPriority is the agent-assigned follow-up priority
type ClientPriority string

const (
	ClientPriorityLow    ClientPriority = "low"
	ClientPriorityMedium ClientPriority = "medium"
	ClientPriorityHigh   ClientPriority = "high"
)

// Client is a CRM contact with recorded property preferences.
// PreferredPropertyTypes is canonically a list; the adapter folds the
// legacy scalar form into a one-element slice at the storage boundary.
type Client struct {
	ID                     string         `json:"id" db:"id"`
	AgentID                string         `json:"agent_id" db:"agent_id"`
	ClientName             string         `json:"client_name" db:"client_name"`
	PhoneNumber            string         `json:"phone_number" db:"phone_number"`
	Intent                 Intent         `json:"intent" db:"intent"`
	PreferredLocation      string         `json:"preferred_location" db:"preferred_location"`
	PreferredPropertyTypes pq.StringArray `json:"preferred_property_types" db:"preferred_property_types"`
	MinRooms               *int           `json:"min_rooms,omitempty" db:"min_rooms"`
	MinArea                *float64       `json:"min_area,omitempty" db:"min_area"`
	MaxPrice               *float64       `json:"max_price,omitempty" db:"max_price"`
	PreferredCondition     string         `json:"preferred_condition" db:"preferred_condition"`
	NeedsParking           *bool          `json:"needs_parking,omitempty" db:"needs_parking"`
	NeedsBalcony           *bool          `json:"needs_balcony,omitempty" db:"needs_balcony"`
	PreApproval            string         `json:"pre_approval" db:"pre_approval"`
	Status                 ClientStatus   `json:"status" db:"status"`
	Priority               ClientPriority `json:"priority" db:"priority"`
	CreatedAt              time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at" db:"updated_at"`
}
