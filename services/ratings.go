package services

import (
	"errors"
	"time"

	"github.com/pritom1343/travelbook-api/models"
	"gorm.io/gorm"
)

var ErrInvalidStars = errors.New("stars must be between 1 and 5")

// RatingsService manages package ratings
type RatingsService struct {
	DB *gorm.DB
}

// RatePackage records a user's rating for a package. Rating the same
// package again replaces the earlier score.
func (s *RatingsService) RatePackage(userID, packageID uint64, stars int, comment string) (*models.Rating, error) {

	if stars < 1 || stars > 5 {
		return nil, ErrInvalidStars
	}

	var rating models.Rating
	err := s.DB.
		Where("user_id = ?", userID).
		Where("package_id = ?", packageID).
		First(&rating).
		Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	rating.UserID = userID
	rating.PackageID = packageID
	rating.Stars = stars
	rating.Comment = comment
	if rating.ID == 0 {
		rating.CreatedDate = time.Now()
		err = s.DB.Create(&rating).Error
	} else {
		err = s.DB.Save(&rating).Error
	}
	if err != nil {
		return nil, err
	}
	return &rating, nil

}

// AverageRating computes the mean score of a package, with the number of
// ratings it is based on. Zero ratings yields (0, 0).
func (s *RatingsService) AverageRating(packageID uint64) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := s.DB.
		Model(&models.Rating{}).
		Select("COALESCE(AVG(stars), 0) AS avg, COUNT(*) AS count").
		Where("package_id = ?", packageID).
		Scan(&result).
		Error
	if err != nil {
		return 0, 0, err
	}
	return result.Avg, result.Count, nil
}

// ListPackageRatings lists the ratings on a package, newest first
func (s *RatingsService) ListPackageRatings(packageID uint64) ([]*models.Rating, error) {
	var ratings []*models.Rating
	err := s.DB.
		Preload("User").
		Where("package_id = ?", packageID).
		Order("created_date DESC").
		Find(&ratings).
		Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}
