package models

// PreApproval is the canonical tri-state mortgage pre-approval status.
// Legacy records carry it as a boolean or as a Hebrew string vocabulary;
// both are folded into this enum at the storage boundary.
type PreApproval string

const (
	PreApprovalUnknown     PreApproval = "unknown"
	PreApprovalApproved    PreApproval = "approved"
	PreApprovalNotApproved PreApproval = "not_approved"
	PreApprovalInProgress  PreApproval = "in_progress"
)

// PropertyPreference is the canonical preference shape shared by clients
// and call-derived leads. Criteria evaluation only ever sees this form.
// Nil pointer fields mean "no requirement"; an empty Location is still
// evaluated (and fails) rather than being skipped.
type PropertyPreference struct {
	DisplayName   string
	Location      string
	PropertyTypes []string
	MaxPrice      *float64
	MinRooms      *int
	MinArea       *float64
	Condition     string
	NeedsParking  *bool
	NeedsBalcony  *bool
	PreApproval   PreApproval
}
