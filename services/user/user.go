package user

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/xtharshh/kwick-backend/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrDuplicateMobile signals a registration against an existing mobile number.
var ErrDuplicateMobile = errors.New("account with this mobile number already exists")

var mobilePattern = regexp.MustCompile(`^\d{10}$`)

// Profile fields a client may update directly. Balance and identity fields
// are managed elsewhere.
var updatableFields = map[string]bool{
	"firstName": true,
	"lastName":  true,
	"email":     true,
	"dob":       true,
	"street":    true,
	"landmark":  true,
	"city":      true,
	"state":     true,
	"pincode":   true,
	"age":       true,
}

// ValidateMobileNumber checks the 10-digit mobile number format.
func ValidateMobileNumber(mobileNumber string) error {
	if mobileNumber == "" {
		return errors.New("mobile number is required")
	}
	if !mobilePattern.MatchString(mobileNumber) {
		return fmt.Errorf("%s is not a valid phone number", mobileNumber)
	}
	return nil
}

// ParseDOB accepts the client's DD/MM/YYYY date format.
func ParseDOB(value string) (time.Time, error) {
	t, err := time.Parse("02/01/2006", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date of birth %q: %w", value, err)
	}
	return t, nil
}

// Register creates a new customer account.
func (s *DefaultUserService) Register(ctx context.Context, u *models.User) (*models.User, error) {
	if err := ValidateMobileNumber(u.MobileNumber); err != nil {
		return nil, err
	}
	if u.UserType == "" {
		u.UserType = "customer"
	}

	if _, err := s.Repo.GetByMobileNumber(ctx, u.MobileNumber); err == nil {
		return nil, ErrDuplicateMobile
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	if err := s.Repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// GetByMobileNumber fetches a user profile by mobile number.
func (s *DefaultUserService) GetByMobileNumber(ctx context.Context, mobileNumber string) (*models.User, error) {
	return s.Repo.GetByMobileNumber(ctx, mobileNumber)
}

// GetByID fetches a user by its unique id.
func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// List returns all users.
func (s *DefaultUserService) List(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

// UpdateProfile applies a whitelisted field set to the user's profile.
func (s *DefaultUserService) UpdateProfile(ctx context.Context, mobileNumber string, fields map[string]any) (*models.User, error) {
	update, err := BuildProfileUpdate(fields)
	if err != nil {
		return nil, err
	}
	if len(update) == 0 {
		return s.Repo.GetByMobileNumber(ctx, mobileNumber)
	}
	return s.Repo.UpdateByMobileNumber(ctx, mobileNumber, update)
}

// SetBalance overwrites the user's wallet balance.
func (s *DefaultUserService) SetBalance(ctx context.Context, mobileNumber string, balance float64) (*models.User, error) {
	return s.Repo.SetBalance(ctx, mobileNumber, balance)
}

// BuildProfileUpdate converts a client-supplied field map into a safe
// update document, shared by customer and worker profile updates.
func BuildProfileUpdate(fields map[string]any) (bson.M, error) {
	update := bson.M{}
	for key, value := range fields {
		if !updatableFields[key] {
			continue
		}
		if key == "dob" {
			raw, ok := value.(string)
			if !ok {
				return nil, errors.New("dob must be a DD/MM/YYYY string")
			}
			dob, err := ParseDOB(raw)
			if err != nil {
				return nil, err
			}
			update["dob"] = dob
			continue
		}
		update[key] = value
	}
	return update, nil
}
