package services

import (
	"casa_hotels_go/models"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ErrPropertyNotFound is returned when no active property matches a slug
var ErrPropertyNotFound = errors.New("property not found")

func withPropertyRelations(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Photos", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_main DESC, sort_order ASC")
		}).
		Preload("Amenities", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		})
}

// GetAllProperties returns active properties in display order
func GetAllProperties(db *gorm.DB) ([]models.Property, error) {
	var properties []models.Property
	err := withPropertyRelations(db).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

// GetPropertyBySlug returns the active property with the given public id
func GetPropertyBySlug(db *gorm.DB, slug string) (*models.Property, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, ErrPropertyNotFound
	}

	var property models.Property
	err := withPropertyRelations(db).
		Where("slug = ? AND is_active = ?", slug, true).
		First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to load property %q: %w", slug, err)
	}
	return &property, nil
}

// AddPropertyPhoto attaches an image to a property. When isMain is set the
// previous main photo is demoted.
func AddPropertyPhoto(db *gorm.DB, property *models.Property, url, storageKey string, isMain bool) (*models.PropertyPhoto, error) {
	photo := &models.PropertyPhoto{
		PropertyID: property.ID,
		URL:        url,
		StorageKey: storageKey,
		IsMain:     isMain,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var maxOrder int
		if err := tx.Model(&models.PropertyPhoto{}).
			Where("property_id = ?", property.ID).
			Select("COALESCE(MAX(sort_order), -1)").
			Scan(&maxOrder).Error; err != nil {
			return err
		}
		photo.SortOrder = maxOrder + 1

		if isMain {
			if err := tx.Model(&models.PropertyPhoto{}).
				Where("property_id = ? AND is_main = ?", property.ID, true).
				Update("is_main", false).Error; err != nil {
				return err
			}
			if err := tx.Model(property).Update("image", url).Error; err != nil {
				return err
			}
		}
		return tx.Create(photo).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add photo: %w", err)
	}
	return photo, nil
}
