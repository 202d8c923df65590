package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/pritom1343/travelbook-api/models"
	"gorm.io/gorm"
)

// Booking failures surfaced to the API layer
var (
	ErrPackageNotFound = errors.New("package not found")
	ErrNotEnoughSlots  = errors.New("not enough available slots")
	ErrBookingNotFound = errors.New("booking not found")
	ErrTripNotFound    = errors.New("custom trip not found")
	ErrTripNotBookable = errors.New("custom trip is not approved")
)

// BookingsService manages slot reservations on tour packages and
// confirmations of approved custom trips
type BookingsService struct {
	DB *gorm.DB
}

// BookPackage reserves member slots on a package. The availability check
// and the slot increment run in one transaction so two racing bookings
// cannot oversell the package.
func (s *BookingsService) BookPackage(userID, packageID uint64, members int) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {

		var pkg models.TourPackage
		err := tx.
			Where("deleted_date IS NULL").
			First(&pkg, packageID).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPackageNotFound
			}
			return err
		}
		if members <= 0 || members > pkg.AvailableSlots() {
			return ErrNotEnoughSlots
		}

		// Take the slots
		pkg.BookedMembers += members
		if err := tx.Save(&pkg).Error; err != nil {
			return err
		}

		booking = models.Booking{
			Reference:   uuid.NewString(),
			UserID:      userID,
			PackageID:   sql.NullInt64{Valid: true, Int64: int64(packageID)},
			Members:     members,
			CreatedDate: time.Now(),
		}
		return tx.Create(&booking).Error

	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// BookCustomTrip confirms an approved custom trip as a booking
func (s *BookingsService) BookCustomTrip(userID uint64, trip *models.CustomTrip) (*models.Booking, error) {
	if trip.Status != models.TripStatusApproved {
		return nil, ErrTripNotBookable
	}
	booking := models.Booking{
		Reference:    uuid.NewString(),
		UserID:       userID,
		CustomTripID: sql.NullInt64{Valid: true, Int64: int64(trip.ID)},
		Members:      trip.People,
		CreatedDate:  time.Now(),
	}
	if err := s.DB.Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelBooking cancels a booking, releases its package slots and writes
// the refund record. Only the owning user (or an admin acting for them)
// reaches this path; already-cancelled bookings are rejected.
func (s *BookingsService) CancelBooking(bookingID, userID uint64, reason string) (*models.Refund, error) {
	var refund models.Refund
	err := s.DB.Transaction(func(tx *gorm.DB) error {

		var booking models.Booking
		err := tx.
			Where("user_id = ?", userID).
			Where("cancelled_date IS NULL").
			First(&booking, bookingID).
			Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrBookingNotFound
			}
			return err
		}

		booking.CancelledDate = sql.NullTime{Valid: true, Time: time.Now()}
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}

		// Release the slots and compute the refund amount
		var amount float64
		if booking.PackageID.Valid {
			var pkg models.TourPackage
			if err := tx.First(&pkg, booking.PackageID.Int64).Error; err != nil {
				return err
			}
			pkg.BookedMembers -= booking.Members
			if pkg.BookedMembers < 0 {
				pkg.BookedMembers = 0
			}
			if err := tx.Save(&pkg).Error; err != nil {
				return err
			}
			amount = pkg.Price * float64(booking.Members)
		} else if booking.CustomTripID.Valid {
			var trip models.CustomTrip
			if err := tx.First(&trip, booking.CustomTripID.Int64).Error; err != nil {
				return err
			}
			if trip.Price.Valid {
				amount = trip.Price.Float64
			}
		}

		refund = models.Refund{
			BookingID:   booking.ID,
			Amount:      amount,
			Reason:      reason,
			CreatedDate: time.Now(),
		}
		return tx.Create(&refund).Error

	})
	if err != nil {
		return nil, err
	}
	return &refund, nil
}

// ListBookingsForUser lists a user's bookings, newest first
func (s *BookingsService) ListBookingsForUser(userID uint64) ([]*models.Booking, error) {
	var bookings []*models.Booking
	err := s.DB.
		Preload("Package").
		Preload("CustomTrip").
		Where("user_id = ?", userID).
		Order("created_date DESC").
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListAllBookings lists every booking, newest first, for the admin
// dashboard
func (s *BookingsService) ListAllBookings() ([]*models.Booking, error) {
	var bookings []*models.Booking
	err := s.DB.
		Preload("User").
		Preload("Package").
		Preload("CustomTrip").
		Order("created_date DESC").
		Find(&bookings).
		Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListRefunds lists every refund record, newest first
func (s *BookingsService) ListRefunds() ([]*models.Refund, error) {
	var refunds []*models.Refund
	err := s.DB.
		Preload("Booking").
		Order("created_date DESC").
		Find(&refunds).
		Error
	if err != nil {
		return nil, err
	}
	return refunds, nil
}
