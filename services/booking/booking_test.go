package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/xtharshh/kwick-backend/models"
	"github.com/xtharshh/kwick-backend/services/negotiation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeBookingRepo struct {
	bookings map[string]*models.ServiceBooking
	nextID   int
}

func newFakeBookingRepo(bookings ...*models.ServiceBooking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[string]*models.ServiceBooking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *models.ServiceBooking) error {
	r.nextID++
	booking.ID = fmt.Sprintf("b%d", r.nextID)
	booking.OrderID = fmt.Sprintf("ORD-%d", r.nextID)
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) GetByID(ctx context.Context, id string) (*models.ServiceBooking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return b, nil
}

func (r *fakeBookingRepo) GetByOrderID(ctx context.Context, orderID string) (*models.ServiceBooking, error) {
	for _, b := range r.bookings {
		if b.OrderID == orderID {
			return b, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeBookingRepo) GetByMobileNumber(ctx context.Context, mobileNumber string) ([]models.ServiceBooking, error) {
	var out []models.ServiceBooking
	for _, b := range r.bookings {
		if b.MobileNumber == mobileNumber {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetPendingWithCustomer(ctx context.Context) ([]models.BookingWithCustomer, error) {
	var out []models.BookingWithCustomer
	for _, b := range r.bookings {
		if b.Status == models.BookingStatusPending {
			out = append(out, models.BookingWithCustomer{ServiceBooking: *b})
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateByID(ctx context.Context, id string, fields bson.M) (*models.ServiceBooking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	if status, ok := fields["status"].(string); ok {
		b.Status = status
	}
	if price, ok := fields["price"].(float64); ok {
		b.Price = price
	}
	return b, nil
}

type fakeUserLookup struct {
	users map[string]*models.User
}

func (r *fakeUserLookup) Create(ctx context.Context, u *models.User) error { return nil }

func (r *fakeUserLookup) GetByID(ctx context.Context, id string) (*models.User, error) {
	return nil, mongo.ErrNoDocuments
}

func (r *fakeUserLookup) GetByMobileNumber(ctx context.Context, mobileNumber string) (*models.User, error) {
	u, ok := r.users[mobileNumber]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func (r *fakeUserLookup) GetAll(ctx context.Context) ([]models.User, error) { return nil, nil }

func (r *fakeUserLookup) UpdateByMobileNumber(ctx context.Context, mobileNumber string, fields bson.M) (*models.User, error) {
	return r.GetByMobileNumber(ctx, mobileNumber)
}

func (r *fakeUserLookup) SetBalance(ctx context.Context, mobileNumber string, balance float64) (*models.User, error) {
	return r.GetByMobileNumber(ctx, mobileNumber)
}

type fakeWorkerLookup struct{}

func (fakeWorkerLookup) GetByMobileNumber(ctx context.Context, mobileNumber string) (*models.Worker, error) {
	if mobileNumber != "9123456780" {
		return nil, mongo.ErrNoDocuments
	}
	return &models.Worker{ID: "w1", MobileNumber: mobileNumber}, nil
}

type nopBroadcaster struct{}

func (nopBroadcaster) SendToRoom(customerID, event string, payload any) {}
func (nopBroadcaster) SendToRole(role, event string, payload any)      {}
func (nopBroadcaster) SendToAll(event string, payload any)             {}

func newBookingService(repo *fakeBookingRepo) *DefaultBookingService {
	return &DefaultBookingService{
		Repo: repo,
		UserRepo: &fakeUserLookup{users: map[string]*models.User{
			"9876543210": {ID: "c1", MobileNumber: "9876543210"},
		}},
		Negotiation: &negotiation.DefaultNegotiationService{
			BookingRepo: repo,
			WorkerRepo:  fakeWorkerLookup{},
			Offers:      negotiation.NewOfferStore(),
			Broadcaster: nopBroadcaster{},
		},
	}
}

func validInput() CreateBookingInput {
	return CreateBookingInput{
		MobileNumber:     "9876543210",
		SelectedServices: []string{"deep-clean"},
		NumberOfRooms:    2,
		Date:             "2026-09-01",
		Time:             "10:00",
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a pending booking", func(t *testing.T) {
		svc := newBookingService(newFakeBookingRepo())

		created, err := svc.Create(ctx, validInput())
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusPending, created.Status)
		assert.Equal(t, "c1", created.CustomerID)
		assert.NotEmpty(t, created.OrderID)
		assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), created.Date)
	})

	t.Run("accepts RFC3339 dates", func(t *testing.T) {
		svc := newBookingService(newFakeBookingRepo())
		input := validInput()
		input.Date = "2026-09-01T10:00:00Z"

		created, err := svc.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, 2026, created.Date.Year())
	})

	missing := []struct {
		name   string
		mutate func(*CreateBookingInput)
	}{
		{"no time", func(in *CreateBookingInput) { in.Time = "" }},
		{"no date", func(in *CreateBookingInput) { in.Date = "" }},
		{"no rooms", func(in *CreateBookingInput) { in.NumberOfRooms = 0 }},
	}
	for _, tc := range missing {
		t.Run(tc.name, func(t *testing.T) {
			svc := newBookingService(newFakeBookingRepo())
			input := validInput()
			tc.mutate(&input)

			_, err := svc.Create(ctx, input)
			require.ErrorIs(t, err, ErrMissingFields)
		})
	}

	t.Run("rejects a malformed date", func(t *testing.T) {
		svc := newBookingService(newFakeBookingRepo())
		input := validInput()
		input.Date = "01-09-2026"

		_, err := svc.Create(ctx, input)
		require.Error(t, err)
	})

	t.Run("rejects an unknown customer", func(t *testing.T) {
		svc := newBookingService(newFakeBookingRepo())
		input := validInput()
		input.MobileNumber = "0000000000"

		_, err := svc.Create(ctx, input)
		require.ErrorIs(t, err, mongo.ErrNoDocuments)
	})
}

func TestUpdatePrice(t *testing.T) {
	ctx := context.Background()

	t.Run("runs the negotiating transition", func(t *testing.T) {
		repo := newFakeBookingRepo(&models.ServiceBooking{
			ID: "b1", CustomerID: "c1", Status: models.BookingStatusPending,
		})
		svc := newBookingService(repo)

		updated, err := svc.UpdatePrice(ctx, "b1", 500, negotiation.WorkerData{MobileNumber: "9123456780"})
		require.NoError(t, err)
		assert.Equal(t, models.BookingStatusNegotiating, updated.Status)
		assert.Equal(t, 500.0, updated.Price)
	})

	t.Run("propagates validation failures", func(t *testing.T) {
		repo := newFakeBookingRepo(&models.ServiceBooking{
			ID: "b1", CustomerID: "c1", Status: models.BookingStatusPending,
		})
		svc := newBookingService(repo)

		_, err := svc.UpdatePrice(ctx, "b1", 0, negotiation.WorkerData{MobileNumber: "9123456780"})
		var validationErr *negotiation.ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Equal(t, models.BookingStatusPending, repo.bookings["b1"].Status)
	})
}

func TestGetPending(t *testing.T) {
	repo := newFakeBookingRepo(
		&models.ServiceBooking{ID: "b1", Status: models.BookingStatusPending},
		&models.ServiceBooking{ID: "b2", Status: models.BookingStatusConfirmed},
	)
	svc := newBookingService(repo)

	pending, err := svc.GetPending(context.Background())
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "b1", pending[0].ID)
}
