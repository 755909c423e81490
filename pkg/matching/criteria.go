// Package matching implements the property/lead scoring core: per-criterion
// evaluation, score aggregation, priority classification, candidate
// selection and collaboration discovery.
package matching

import (
	"strconv"
	"strings"

	"github.com/Ramsey-B/clover/pkg/models"
	"github.com/Ramsey-B/clover/pkg/normalizers"
)

// Criterion identifies one comparable attribute of a pairing
type Criterion string

const (
	CriterionLocation  Criterion = "location"
	CriterionType      Criterion = "property_type"
	CriterionPrice     Criterion = "price"
	CriterionRooms     Criterion = "rooms"
	CriterionArea      Criterion = "area"
	CriterionCondition Criterion = "condition"
)

// StandardCriteria is the 5-criterion set used for property/client and
// property/call pairings. Order is fixed so match details render stably.
var StandardCriteria = []Criterion{
	CriterionLocation,
	CriterionType,
	CriterionPrice,
	CriterionRooms,
	CriterionArea,
}

// CollaborationCriteria adds the condition criterion for the stricter
// collaboration gate (6 criteria total).
var CollaborationCriteria = []Criterion{
	CriterionLocation,
	CriterionType,
	CriterionPrice,
	CriterionRooms,
	CriterionArea,
	CriterionCondition,
}

// anyValue is the display placeholder for an unset preference
const anyValue = "any"

// Evaluate compares one property attribute against one preference attribute
// and returns the display pair plus the match verdict.
//
// Absent preferences are trivially satisfied so an unset budget or room
// requirement never depresses a candidate's score. Location is the one
// exception: it is always evaluated and a blank side fails the criterion
// rather than skipping it, so it always participates in the denominator.
func Evaluate(criterion Criterion, p *models.Property, pref models.PropertyPreference) models.MatchDetail {
	switch criterion {
	case CriterionLocation:
		return evaluateLocation(p, pref)
	case CriterionType:
		return evaluateType(p, pref)
	case CriterionPrice:
		return evaluatePrice(p, pref)
	case CriterionRooms:
		return evaluateRooms(p, pref)
	case CriterionArea:
		return evaluateArea(p, pref)
	case CriterionCondition:
		return evaluateCondition(p, pref)
	}
	return models.MatchDetail{Label: string(criterion)}
}

func evaluateLocation(p *models.Property, pref models.PropertyPreference) models.MatchDetail {
	propLoc := normalizers.NormalizeLocation(p.Location)
	prefLoc := normalizers.NormalizeLocation(pref.Location)

	matched := false
	if propLoc != "" && prefLoc != "" {
		matched = strings.Contains(propLoc, prefLoc) || strings.Contains(prefLoc, propLoc)
	}

	return models.MatchDetail{
		Label:         "Location",
		PropertyValue: p.Location,
		ClientValue:   pref.Location,
		Match:         matched,
	}
}

func evaluateType(p *models.Property, pref models.PropertyPreference) models.MatchDetail {
	detail := models.MatchDetail{
		Label:         "Property type",
		PropertyValue: string(p.PropertyType),
		ClientValue:   strings.Join(pref.PropertyTypes, ", "),
	}

	if len(pref.PropertyTypes) == 0 {
		detail.ClientValue = anyValue
		detail.Match = true
		return detail
	}

	propType := strings.ToLower(string(p.PropertyType))
	for _, t := range pref.PropertyTypes {
		if t == propType {
			detail.Match = true
			break
		}
	}
	return detail
}

func evaluatePrice(p *models.Property, pref models.PropertyPreference) models.MatchDetail {
	detail := models.MatchDetail{
		Label:         "Price",
		PropertyValue: formatAmount(p.Price),
	}

	if pref.MaxPrice == nil {
		detail.ClientValue = anyValue
		detail.Match = true
		return detail
	}

	detail.ClientValue = "up to " + formatAmount(*pref.MaxPrice)
	detail.Match = p.Price <= *pref.MaxPrice
	return detail
}

func evaluateRooms(p *models.Property, pref models.PropertyPreference) models.MatchDetail {
	detail := models.MatchDetail{
		Label:         "Rooms",
		PropertyValue: strconv.Itoa(p.Bedrooms),
	}

	if pref.MinRooms == nil {
		detail.ClientValue = anyValue
		detail.Match = true
		return detail
	}

	detail.ClientValue = "at least " + strconv.Itoa(*pref.MinRooms)
	detail.Match = p.Bedrooms >= *pref.MinRooms
	return detail
}

func evaluateArea(p *models.Property, pref models.PropertyPreference) models.MatchDetail {
	detail := models.MatchDetail{
		Label:         "Area",
		PropertyValue: formatAmount(p.Area) + " m²",
	}

	if pref.MinArea == nil {
		detail.ClientValue = anyValue
		detail.Match = true
		return detail
	}

	detail.ClientValue = "at least " + formatAmount(*pref.MinArea) + " m²"
	detail.Match = p.Area >= *pref.MinArea
	return detail
}

func evaluateCondition(p *models.Property, pref models.PropertyPreference) models.MatchDetail {
	propCondition := ""
	if p.Condition != nil {
		propCondition = *p.Condition
	}

	detail := models.MatchDetail{
		Label:         "Condition",
		PropertyValue: propCondition,
		ClientValue:   pref.Condition,
	}

	if pref.Condition == "" {
		detail.ClientValue = anyValue
		detail.Match = true
		return detail
	}

	detail.Match = propCondition != "" &&
		normalizers.NormalizeCondition(propCondition) == pref.Condition
	return detail
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
