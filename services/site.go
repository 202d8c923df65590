package services

import (
	"errors"

	"github.com/pritom1343/travelbook-api/models"
	"gorm.io/gorm"
)

// SiteService manages site-wide content, currently just the home page
// hero image
type SiteService struct {
	DB *gorm.DB
}

// EnsureHomeImage guarantees the singleton home image row exists. Called
// once at process start; request paths only ever read or update the row.
func (s *SiteService) EnsureHomeImage(defaultFilename string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var img models.HomeImage
		err := tx.First(&img).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&models.HomeImage{Filename: defaultFilename}).Error
	})
}

// GetHomeImage reads the singleton home image row
func (s *SiteService) GetHomeImage() (*models.HomeImage, error) {
	var img models.HomeImage
	if err := s.DB.First(&img).Error; err != nil {
		return nil, err
	}
	return &img, nil
}

// SetHomeImage replaces the home page image filename
func (s *SiteService) SetHomeImage(filename string) error {
	var img models.HomeImage
	if err := s.DB.First(&img).Error; err != nil {
		return err
	}
	img.Filename = filename
	return s.DB.Save(&img).Error
}
