package listing

import (
	"fmt"

	"github.com/hearthapi/hearth/internal/domain"
)

// Property status values used by convention. Status is matched exactly and
// never validated against this set.
const (
	StatusForSale = "For Sale"
	StatusForRent = "For Rent"
)

// Property is a real-estate listing as stored in the property collection.
type Property struct {
	Title        string    `bson:"title" json:"title"`
	Status       string    `bson:"status" json:"status"`
	Price        float64   `bson:"price" json:"price"`
	Currency     string    `bson:"currency" json:"currency"`
	Location     Location  `bson:"location" json:"location"`
	Beds         *int      `bson:"beds,omitempty" json:"beds,omitempty"`
	Baths        *float64  `bson:"baths,omitempty" json:"baths,omitempty"`
	AreaSqft     *int      `bson:"area_sqft,omitempty" json:"area_sqft,omitempty"`
	LotSize      *float64  `bson:"lot_size,omitempty" json:"lot_size,omitempty"`
	PropertyType string    `bson:"property_type,omitempty" json:"property_type,omitempty"`
	YearBuilt    *int      `bson:"year_built,omitempty" json:"year_built,omitempty"`
	Parking      string    `bson:"parking,omitempty" json:"parking,omitempty"`
	Amenities    []string  `bson:"amenities" json:"amenities"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
	Media        Media     `bson:"media" json:"media"`
	Financial    Financial `bson:"financial" json:"financial"`
	Tags         []string  `bson:"tags" json:"tags"`
	Agent        *Agent    `bson:"agent,omitempty" json:"agent,omitempty"`
	Slug         string    `bson:"slug,omitempty" json:"slug,omitempty"`
}

// Location is a property address with optional coordinates.
type Location struct {
	Street     string   `bson:"street" json:"street"`
	City       string   `bson:"city" json:"city"`
	State      string   `bson:"state" json:"state"`
	PostalCode string   `bson:"postal_code" json:"postal_code"`
	Country    string   `bson:"country" json:"country"`
	Lat        *float64 `bson:"lat,omitempty" json:"lat,omitempty"`
	Lng        *float64 `bson:"lng,omitempty" json:"lng,omitempty"`
}

// Media holds listing imagery and tour links. All fields are optional.
type Media struct {
	CoverImage     string   `bson:"cover_image,omitempty" json:"cover_image,omitempty"`
	Gallery        []string `bson:"gallery" json:"gallery"`
	VideoURL       string   `bson:"video_url,omitempty" json:"video_url,omitempty"`
	VirtualTourURL string   `bson:"virtual_tour_url,omitempty" json:"virtual_tour_url,omitempty"`
}

// Financial holds recurring cost figures.
type Financial struct {
	HOAFees *float64 `bson:"hoa_fees,omitempty" json:"hoa_fees,omitempty"`
	Taxes   *float64 `bson:"taxes,omitempty" json:"taxes,omitempty"`
}

// Agent is the listing agent contact record.
type Agent struct {
	Name    string `bson:"name" json:"name"`
	Photo   string `bson:"photo,omitempty" json:"photo,omitempty"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Email   string `bson:"email,omitempty" json:"email,omitempty"`
	License string `bson:"license,omitempty" json:"license,omitempty"`
}

// ApplyDefaults fills currency and country with their conventional values.
func (p *Property) ApplyDefaults() {
	if p.Currency == "" {
		p.Currency = "USD"
	}
	if p.Location.Country == "" {
		p.Location.Country = "USA"
	}
	if p.Amenities == nil {
		p.Amenities = []string{}
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Media.Gallery == nil {
		p.Media.Gallery = []string{}
	}
}

// Validate checks required fields and range invariants.
func (p *Property) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("title is required: %w", domain.ErrValidation)
	}
	if p.Status == "" {
		return fmt.Errorf("status is required: %w", domain.ErrValidation)
	}
	if p.Price < 0 {
		return fmt.Errorf("price must be non-negative: %w", domain.ErrValidation)
	}
	if err := p.Location.validate(); err != nil {
		return err
	}
	if err := nonNegativeInt("beds", p.Beds); err != nil {
		return err
	}
	if err := nonNegativeFloat("baths", p.Baths); err != nil {
		return err
	}
	if err := nonNegativeInt("area_sqft", p.AreaSqft); err != nil {
		return err
	}
	if err := nonNegativeFloat("lot_size", p.LotSize); err != nil {
		return err
	}
	if err := nonNegativeFloat("hoa_fees", p.Financial.HOAFees); err != nil {
		return err
	}
	if err := nonNegativeFloat("taxes", p.Financial.Taxes); err != nil {
		return err
	}
	if p.Agent != nil && p.Agent.Name == "" {
		return fmt.Errorf("agent name is required: %w", domain.ErrValidation)
	}
	return nil
}

func (l *Location) validate() error {
	if l.Street == "" || l.City == "" || l.State == "" || l.PostalCode == "" {
		return fmt.Errorf("location street, city, state and postal_code are required: %w", domain.ErrValidation)
	}
	if l.Lat != nil && (*l.Lat < -90 || *l.Lat > 90) {
		return fmt.Errorf("lat must be within [-90, 90]: %w", domain.ErrValidation)
	}
	if l.Lng != nil && (*l.Lng < -180 || *l.Lng > 180) {
		return fmt.Errorf("lng must be within [-180, 180]: %w", domain.ErrValidation)
	}
	return nil
}

func nonNegativeInt(name string, v *int) error {
	if v != nil && *v < 0 {
		return fmt.Errorf("%s must be non-negative: %w", name, domain.ErrValidation)
	}
	return nil
}

func nonNegativeFloat(name string, v *float64) error {
	if v != nil && *v < 0 {
		return fmt.Errorf("%s must be non-negative: %w", name, domain.ErrValidation)
	}
	return nil
}
