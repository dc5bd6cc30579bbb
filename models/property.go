package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Property is a hotel presented on the site. Bookings happen on the external
// engine addressed by BookingEngineURL.
type Property struct {
	ID        string         `gorm:"type:uuid;primarykey" json:"-"`
	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Slug        string `gorm:"uniqueIndex;not null" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `json:"location"`
	Image       string `json:"image"`
	// Optional gallery link for the full photo collection
	GalleryCollection string `json:"gallery_collection,omitempty"`
	// Template containing {checkIn}, {checkOut} and {guests} placeholders
	BookingEngineURL string `gorm:"type:text;not null" json:"booking_engine_url"`
	IsActive         bool   `gorm:"not null;default:true" json:"-"`
	SortOrder        int    `gorm:"not null;default:0" json:"-"`

	// Relationships
	Photos    []PropertyPhoto   `gorm:"foreignKey:PropertyID" json:"photos,omitempty"`
	Amenities []PropertyAmenity `gorm:"foreignKey:PropertyID" json:"-"`
}

// TableName specifies the table name for Property model
func (Property) TableName() string {
	return "properties"
}

// BeforeCreate hook to generate UUID
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// MainPhoto returns the photo flagged as main, then the first photo, then the
// cover image.
func (p *Property) MainPhoto() string {
	for _, photo := range p.Photos {
		if photo.IsMain {
			return photo.URL
		}
	}
	if len(p.Photos) > 0 {
		return p.Photos[0].URL
	}
	return p.Image
}

// AmenityNames returns the amenity labels in display order
func (p *Property) AmenityNames() []string {
	names := make([]string, 0, len(p.Amenities))
	for _, a := range p.Amenities {
		names = append(names, a.Name)
	}
	return names
}

// PropertyPhoto is one image in a property's carousel
type PropertyPhoto struct {
	ID         string    `gorm:"type:uuid;primarykey" json:"id"`
	CreatedAt  time.Time `json:"-"`
	PropertyID string    `gorm:"type:uuid;not null;index" json:"-"`
	URL        string    `gorm:"type:text;not null" json:"url"`
	// Set for uploaded photos; empty for externally hosted ones
	StorageKey string `json:"-"`
	IsMain     bool   `gorm:"not null;default:false" json:"isMain"`
	SortOrder  int    `gorm:"not null;default:0" json:"-"`
}

// TableName specifies the table name for PropertyPhoto model
func (PropertyPhoto) TableName() string {
	return "property_photos"
}

// BeforeCreate hook to generate UUID
func (p *PropertyPhoto) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PropertyAmenity is a single amenity label
type PropertyAmenity struct {
	ID         string `gorm:"type:uuid;primarykey" json:"-"`
	PropertyID string `gorm:"type:uuid;not null;index" json:"-"`
	Name       string `gorm:"not null" json:"name"`
	SortOrder  int    `gorm:"not null;default:0" json:"-"`
}

// TableName specifies the table name for PropertyAmenity model
func (PropertyAmenity) TableName() string {
	return "property_amenities"
}

// BeforeCreate hook to generate UUID
func (a *PropertyAmenity) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	return nil
}
