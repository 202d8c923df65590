package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/pritom1343/travelbook-api/models"
	"gorm.io/gorm"
)

// PackageFilter narrows the public tour package listing. Zero values mean
// no filtering on that field.
type PackageFilter struct {
	Destination string
	PriceRange  string // "min-max"
	Duration    string
}

// PackagesService manages the tour package catalogue
type PackagesService struct {
	DB *gorm.DB
}

// GetPackageByID gets the package with the provided id
func (s *PackagesService) GetPackageByID(id uint64) (*models.TourPackage, error) {
	var pkg models.TourPackage
	err := s.DB.
		Where("deleted_date IS NULL").
		First(&pkg, id).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}

// ListPackages lists the catalogue, narrowed by the provided filter
func (s *PackagesService) ListPackages(filter *PackageFilter) ([]*models.TourPackage, error) {

	query := s.DB.Where("deleted_date IS NULL")

	if len(filter.Destination) > 0 {
		query = query.Where("location LIKE ?", "%"+filter.Destination+"%")
	}
	if len(filter.Duration) > 0 {
		query = query.Where("duration LIKE ?", "%"+filter.Duration+"%")
	}
	if len(filter.PriceRange) > 0 {
		min, max, ok := parsePriceRange(filter.PriceRange)
		if ok {
			query = query.Where("price BETWEEN ? AND ?", min, max)
		}
	}

	var packages []*models.TourPackage
	if err := query.Order("id ASC").Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil

}

// CreatePackage adds a new package to the catalogue
func (s *PackagesService) CreatePackage(pkg *models.TourPackage) error {
	pkg.CreatedDate = time.Now()
	return s.DB.Create(pkg).Error
}

// UpdatePackage saves edits to an existing package. The member cap goes
// through SetMaxMembers so the booked count is clamped when the cap drops.
func (s *PackagesService) UpdatePackage(pkg *models.TourPackage, newMax int) error {
	pkg.SetMaxMembers(newMax)
	return s.DB.Save(pkg).Error
}

// DeletePackage soft-deletes a package from the catalogue
func (s *PackagesService) DeletePackage(id uint64) error {
	return s.DB.
		Model(&models.TourPackage{}).
		Where("deleted_date IS NULL").
		Where("id = ?", id).
		Update("deleted_date", time.Now()).
		Error
}

// parsePriceRange parses a "min-max" range string. A malformed range is
// ignored rather than rejected, keeping the public listing page lenient
// about hand-edited query strings.
func parsePriceRange(s string) (float64, float64, bool) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	min, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	max, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}
	return min, max, true
}
