package services

import (
	"casa_hotels_go/models"
	"log"

	"gorm.io/gorm"
)

// CasaCaminoBookingURL is the HotelKey engine template for Casa Camino
const CasaCaminoBookingURL = "https://booking.hotelkeyapp.com/#/booking/select-rooms?pc=0717&from={checkIn}&to={checkOut}&guests={guests}&skip_search=true&property_id=05ffa925-1976-43ba-b56b-148937916180&url=http%3A%2F%2Fwww.casacaminohotel.com%2F"

// DefaultProperties is the catalogue shipped with the site
func DefaultProperties() []models.Property {
	return []models.Property{
		{
			Slug:              "casa-camino",
			Name:              "Casa Camino Hotel",
			Description:       "A charming and comfortable hotel with excellent amenities and warm hospitality",
			Location:          "Los Angeles, CA",
			Image:             "https://res.cloudinary.com/dyskxbejq/image/upload/v1765485235/1_sbuakk.jpg",
			GalleryCollection: "https://collection.cloudinary.com/dyskxbejq/71046c512c2ca17979f217c6356e1664",
			BookingEngineURL:  CasaCaminoBookingURL,
			IsActive:          true,
			SortOrder:         0,
			Photos: []models.PropertyPhoto{
				{URL: "https://res.cloudinary.com/dyskxbejq/image/upload/v1765485235/1_sbuakk.jpg", IsMain: true, SortOrder: 0},
				{URL: "https://res.cloudinary.com/dyskxbejq/image/upload/v1765485236/2_o8vbns.jpg", SortOrder: 1},
			},
			Amenities: []models.PropertyAmenity{
				{Name: "WiFi", SortOrder: 0},
				{Name: "Parking", SortOrder: 1},
				{Name: "Room Service", SortOrder: 2},
				{Name: "Pool", SortOrder: 3},
				{Name: "Restaurant", SortOrder: 4},
			},
		},
	}
}

// SeedProperties inserts the default catalogue. Existing slugs are left alone.
func SeedProperties(db *gorm.DB) error {
	for _, property := range DefaultProperties() {
		var count int64
		if err := db.Model(&models.Property{}).Where("slug = ?", property.Slug).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		if err := db.Create(&property).Error; err != nil {
			log.Printf("[SEED] Failed to seed property %s: %v", property.Slug, err)
			return err
		}
		log.Printf("[SEED] Created property: %s", property.Name)
	}
	return nil
}
