package services

import (
	"errors"
	"time"

	"github.com/pritom1343/travelbook-api/models"
	"gorm.io/gorm"
)

// AccountsService manages user accounts, both travellers and
// administrators. It doubles as the user directory the chat subsystem
// resolves display names and admin flags from.
type AccountsService struct {
	DB *gorm.DB
}

// GetUserByID gets the user with the provided id
func (s *AccountsService) GetUserByID(id uint64) (*models.User, error) {
	var user models.User
	err := s.DB.
		Where("deleted_date IS NULL").
		First(&user, id).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail gets the user with the provided email address
func (s *AccountsService) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.
		Where("deleted_date IS NULL").
		Where("email LIKE ?", email).
		First(&user).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindByLogin finds a user with the provided login credentials. When
// adminOnly is set, accounts without the admin flag are treated as not
// found, which backs the separate admin login page.
func (s *AccountsService) FindByLogin(email, password string, adminOnly bool) (*models.User, error) {

	// Find the user with the email
	query := s.DB.
		Where("deleted_date IS NULL").
		Where("email LIKE ?", email)
	if adminOnly {
		query = query.Where("is_admin = ?", true)
	}
	var user models.User
	if err := query.First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	// Verify the password
	if !user.VerifyPassword(password) {
		return nil, nil
	}

	// Return the user
	return &user, nil

}

// Register creates a new non-admin account. Returns nil without creating
// anything when the username or email is already taken.
func (s *AccountsService) Register(username, email, password string) (*models.User, error) {

	// Bail out when either identifier is taken
	var count int64
	err := s.DB.
		Model(&models.User{}).
		Where("deleted_date IS NULL").
		Where("username LIKE ? OR email LIKE ?", username, email).
		Count(&count).
		Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, nil
	}

	// Create the account
	user := models.User{
		Username:    username,
		Email:       email,
		ImageFile:   "default.png",
		CreatedDate: time.Now(),
	}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	if err := s.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil

}

// ProfileUpdate carries the editable profile fields
type ProfileUpdate struct {
	FullName   string
	Age        *int64
	Gender     string
	Occupation string
	Address    string
	Phone      string
	Education  string
}

// UpdateProfile writes the editable profile fields onto a user
func (s *AccountsService) UpdateProfile(user *models.User, update *ProfileUpdate) error {
	user.FullName = update.FullName
	user.Age.Valid = update.Age != nil
	if update.Age != nil {
		user.Age.Int64 = *update.Age
	}
	user.Gender = update.Gender
	user.Occupation = update.Occupation
	user.Address = update.Address
	user.Phone = update.Phone
	user.Education = update.Education
	return s.DB.Save(user).Error
}

// ListTravellers lists every non-admin account, for the admin dashboard
func (s *AccountsService) ListTravellers() ([]*models.User, error) {
	var users []*models.User
	err := s.DB.
		Where("deleted_date IS NULL").
		Where("is_admin = ?", false).
		Order("username ASC").
		Find(&users).
		Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser soft-deletes a non-admin account. Admin accounts cannot be
// deleted through this path.
func (s *AccountsService) DeleteUser(id uint64) error {
	return s.DB.
		Model(&models.User{}).
		Where("deleted_date IS NULL").
		Where("is_admin = ?", false).
		Where("id = ?", id).
		Update("deleted_date", time.Now()).
		Error
}
