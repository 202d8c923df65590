package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/pritom1343/travelbook-api/models"
	"gorm.io/gorm"
)

// TripsService manages custom trip requests and their review workflow
type TripsService struct {
	DB *gorm.DB
}

// GetTripByID gets a custom trip by id, optionally scoped to its owner.
// Pass ownerID 0 to skip the ownership check (admin paths).
func (s *TripsService) GetTripByID(id, ownerID uint64) (*models.CustomTrip, error) {
	query := s.DB.Where("deleted_date IS NULL")
	if ownerID != 0 {
		query = query.Where("user_id = ?", ownerID)
	}
	var trip models.CustomTrip
	if err := query.First(&trip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

// SubmitTrip files a new custom trip request in the pending state
func (s *TripsService) SubmitTrip(trip *models.CustomTrip) error {
	trip.Status = models.TripStatusPending
	trip.Price = sql.NullFloat64{}
	trip.Resubmitted = false
	trip.CreatedDate = time.Now()
	return s.DB.Create(trip).Error
}

// ReviewTrip records an admin decision on a pending trip. Approval carries
// the price; rejection carries the notes explaining why.
func (s *TripsService) ReviewTrip(trip *models.CustomTrip, approve bool, price float64, adminNotes string) error {
	if approve {
		trip.Status = models.TripStatusApproved
		trip.Price = sql.NullFloat64{Valid: true, Float64: price}
	} else {
		trip.Status = models.TripStatusRejected
	}
	trip.AdminNotes = adminNotes
	return s.DB.Save(trip).Error
}

// ResubmitTrip puts a rejected trip back into the pending queue with the
// user's revised details, flagged so reviewers see it is a second pass
func (s *TripsService) ResubmitTrip(trip *models.CustomTrip, revised *models.CustomTrip) error {
	if trip.Status != models.TripStatusRejected {
		return errors.New("only rejected trips can be resubmitted")
	}
	trip.Destination = revised.Destination
	trip.Transport = revised.Transport
	trip.Hotel = revised.Hotel
	trip.NumberOfRooms = revised.NumberOfRooms
	trip.RoomType = revised.RoomType
	trip.StartDate = revised.StartDate
	trip.EndDate = revised.EndDate
	trip.People = revised.People
	trip.OtherPreferences = revised.OtherPreferences
	trip.Notes = revised.Notes
	trip.Status = models.TripStatusPending
	trip.Price = sql.NullFloat64{}
	trip.Resubmitted = true
	return s.DB.Save(trip).Error
}

// ListTripsForUser lists a user's custom trip requests, newest first
func (s *TripsService) ListTripsForUser(userID uint64) ([]*models.CustomTrip, error) {
	var trips []*models.CustomTrip
	err := s.DB.
		Where("deleted_date IS NULL").
		Where("user_id = ?", userID).
		Order("created_date DESC").
		Find(&trips).
		Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}

// ListTripsByStatus lists custom trips in one state for the admin review
// queue. An empty status lists everything.
func (s *TripsService) ListTripsByStatus(status string) ([]*models.CustomTrip, error) {
	query := s.DB.
		Preload("User").
		Where("deleted_date IS NULL")
	if len(status) > 0 {
		query = query.Where("status = ?", status)
	}
	var trips []*models.CustomTrip
	if err := query.Order("created_date ASC").Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}
