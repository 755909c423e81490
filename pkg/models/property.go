package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// PropertyType is the listing category vocabulary
type PropertyType string

const (
	PropertyTypeApartment  PropertyType = "apartment"
	PropertyTypeHouse      PropertyType = "house"
	PropertyTypeVilla      PropertyType = "villa"
	PropertyTypeLand       PropertyType = "land"
	PropertyTypeCommercial PropertyType = "commercial"
	PropertyTypeOffice     PropertyType = "office"
	PropertyTypeWarehouse  PropertyType = "warehouse"
	PropertyTypeCottage    PropertyType = "cottage"
	PropertyTypeDuplex     PropertyType = "duplex"
	PropertyTypePenthouse  PropertyType = "penthouse"
	PropertyTypeStudio     PropertyType = "studio"
)

// ValidPropertyTypes lists the accepted listing categories
var ValidPropertyTypes = []PropertyType{
	PropertyTypeApartment,
	PropertyTypeHouse,
	PropertyTypeVilla,
	PropertyTypeLand,
	PropertyTypeCommercial,
	PropertyTypeOffice,
	PropertyTypeWarehouse,
	PropertyTypeCottage,
	PropertyTypeDuplex,
	PropertyTypePenthouse,
	PropertyTypeStudio,
}

// Image is a stored listing photo reference
type Image struct {
	URL      string `json:"url"`
	PublicID string `json:"public_id"`
}

// Images is an ordered list of listing photos, persisted as JSONB
type Images []Image

func (im *Images) Scan(src any) error {
	if src == nil {
		*im = nil
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("Images.Scan: expected []byte, got %T", src)
	}
	return json.Unmarshal(b, im)
}

func (im Images) Value() (driver.Value, error) {
	if im == nil {
		return json.Marshal([]Image{})
	}
	return json.Marshal(im)
}

// Property is a listing owned by an agent. Prices are in ILS.
type Property struct {
	ID            string       `json:"id" db:"id"`
	AgentID       string       `json:"agent_id" db:"agent_id"`
	Title         string       `json:"title" db:"title"`
	Location      string       `json:"location" db:"location"`
	PropertyType  PropertyType `json:"property_type" db:"property_type"`
	Price         float64      `json:"price" db:"price"`
	Bedrooms      int          `json:"bedrooms" db:"bedrooms"`
	Area          float64      `json:"area" db:"area"`
	Condition     *string      `json:"condition,omitempty" db:"condition"`
	Floor         *int         `json:"floor,omitempty" db:"floor"`
	Parking       *bool        `json:"parking,omitempty" db:"parking"`
	Balcony       *bool        `json:"balcony,omitempty" db:"balcony"`
	Collaboration bool         `json:"collaboration" db:"collaboration"`
	Images        Images       `json:"images" db:"images"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
}
