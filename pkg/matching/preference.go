package matching

import (
	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/normalizers"
)

// ClientPreference folds a stored client record into the canonical
// preference shape. All legacy vocabulary (scalar type preference,
// boolean or Hebrew pre-approval, free-text condition) is normalized
// here so criteria evaluation never branches on representation.
// Location keeps the user's text; comparison normalizes its own copy so
// match details can show the value as entered.
func ClientPreference(c *models.Client) models.PropertyPreference {
	return models.PropertyPreference{
		DisplayName:   c.ClientName,
		Location:      normalizers.Trim(c.PreferredLocation),
		PropertyTypes: normalizers.NormalizePropertyTypes(c.PreferredPropertyTypes),
		MaxPrice:      c.MaxPrice,
		MinRooms:      c.MinRooms,
		MinArea:       c.MinArea,
		Condition:     normalizeConditionPref(c.PreferredCondition),
		NeedsParking:  c.NeedsParking,
		NeedsBalcony:  c.NeedsBalcony,
		PreApproval:   normalizers.NormalizePreApproval(c.PreApproval),
	}
}

// CallPreference folds a call-derived lead into the canonical preference
// shape. Calls carry the same attribute set as clients, extracted from the
// conversation by the transcription service.
func CallPreference(c *models.Call) models.PropertyPreference {
	return models.PropertyPreference{
		DisplayName:   c.ClientName,
		Location:      normalizers.Trim(c.Location),
		PropertyTypes: normalizers.NormalizePropertyTypes(c.PropertyTypes),
		MaxPrice:      c.Price,
		MinRooms:      c.Rooms,
		MinArea:       c.Area,
		Condition:     normalizeConditionPref(c.Condition),
		NeedsParking:  c.Parking,
		NeedsBalcony:  c.Balcony,
		PreApproval:   normalizers.NormalizePreApproval(c.PreApproval),
	}
}

func normalizeConditionPref(s string) string {
	if s == "" {
		return ""
	}
	return normalizers.NormalizeCondition(s)
}
