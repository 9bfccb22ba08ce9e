package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonshop-backend/models"
	"salonshop-backend/utils"
)

// BookingService owns the booking lifecycle: slot availability, price
// resolution at creation time and the status state machine.
type BookingService struct {
	db       *gorm.DB
	pricing  *PricingResolver
	notifier Notifier
}

func NewBookingService(db *gorm.DB, notifier Notifier) *BookingService {
	return &BookingService{
		db:       db,
		pricing:  NewPricingResolver(db),
		notifier: notifier,
	}
}

type CreateBookingInput struct {
	ServiceID string
	Date      string
	TimeSlot  string
	Notes     string
}

// BookingFilters narrows admin and customer listings. Zero values mean "all".
type BookingFilters struct {
	Status    string
	Date      string
	ServiceID string
}

// Create books a slot for a customer. The pre-check on the slot triple gives
// a friendly error; the unique index on (service_id, date, time_slot) is the
// authoritative guard, so a duplicate-key failure from a racing insert maps
// to the same ErrSlotTaken.
func (s *BookingService) Create(ctx context.Context, customerID uuid.UUID, in CreateBookingInput) (*models.Booking, error) {
	if !utils.ValidateDateFormat(in.Date) {
		return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrValidation)
	}
	if !utils.ValidateTimeSlot(in.TimeSlot) {
		return nil, fmt.Errorf("%w: invalid time slot format, use HH:MM", ErrValidation)
	}
	if !utils.IsFutureDateTime(in.Date, in.TimeSlot) {
		return nil, fmt.Errorf("%w: booking must be for a future date and time", ErrValidation)
	}
	serviceID, err := uuid.Parse(in.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid service ID", ErrValidation)
	}

	ctx, cancel := storeContext(ctx)
	defer cancel()
	tx := s.db.WithContext(ctx)

	var service models.Service
	if err := tx.First(&service, "id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: service not found", ErrNotFound)
		}
		return nil, translateStoreErr(err)
	}
	if service.Status != models.ServiceActive {
		return nil, ErrServiceInactive
	}

	// Best-effort availability pre-check; Cancelled rows don't count as taken.
	var taken int64
	err = tx.Model(&models.Booking{}).
		Where("service_id = ? AND date = ? AND time_slot = ? AND status <> ?",
			serviceID, in.Date, in.TimeSlot, models.BookingCancelled).
		Count(&taken).Error
	if err != nil {
		return nil, translateStoreErr(err)
	}
	if taken > 0 {
		return nil, ErrSlotTaken
	}

	var customer models.User
	if err := tx.First(&customer, "id = ? AND role = ?", customerID, models.RoleCustomer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: customer not found", ErrNotFound)
		}
		return nil, translateStoreErr(err)
	}

	finalPrice, discountApplied, err := s.pricing.FinalPrice(ctx, &service)
	if err != nil {
		return nil, err
	}

	email := ""
	if customer.Email != nil {
		email = *customer.Email
	}
	booking := models.Booking{
		CustomerID:      customerID,
		CustomerName:    customer.Name,
		CustomerEmail:   email,
		ServiceID:       service.ID,
		ServiceTitle:    service.Title,
		Date:            in.Date,
		TimeSlot:        in.TimeSlot,
		BasePrice:       service.BasePrice,
		FinalPrice:      finalPrice,
		DiscountApplied: discountApplied,
		Status:          models.BookingPending,
		Notes:           in.Notes,
	}

	if err := tx.Create(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSlotTaken
		}
		return nil, translateStoreErr(err)
	}

	s.notifier.BookingCreated(&booking)

	return &booking, nil
}

// Cancel lets the owning customer cancel a still-future booking.
func (s *BookingService) Cancel(ctx context.Context, bookingID, customerID uuid.UUID) (*models.Booking, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()
	tx := s.db.WithContext(ctx)

	var booking models.Booking
	if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking not found", ErrNotFound)
		}
		return nil, translateStoreErr(err)
	}

	if booking.CustomerID != customerID {
		return nil, fmt.Errorf("%w: unauthorized to cancel this booking", ErrForbidden)
	}
	if booking.Status == models.BookingCancelled || booking.Status == models.BookingCompleted {
		return nil, fmt.Errorf("%w: booking is already %s", ErrInvalidTransition, booking.Status)
	}
	if !utils.IsFutureDateTime(booking.Date, booking.TimeSlot) {
		return nil, ErrPastBooking
	}

	if err := tx.Model(&booking).Update("status", models.BookingCancelled).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	booking.Status = models.BookingCancelled

	s.notifier.BookingCancelled(&booking, "customer")

	return &booking, nil
}

// SetStatus is the admin path. Any of the four statuses may be set, in any
// order, including reopening a Cancelled booking; that permissiveness is
// deliberate.
func (s *BookingService) SetStatus(ctx context.Context, bookingID uuid.UUID, newStatus string) (*models.Booking, string, error) {
	if !models.ValidBookingStatus(newStatus) {
		return nil, "", fmt.Errorf("%w: invalid status, must be one of: Pending, Confirmed, Completed, Cancelled", ErrValidation)
	}

	ctx, cancel := storeContext(ctx)
	defer cancel()
	tx := s.db.WithContext(ctx)

	var booking models.Booking
	if err := tx.First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", fmt.Errorf("%w: booking not found", ErrNotFound)
		}
		return nil, "", translateStoreErr(err)
	}

	oldStatus := booking.Status
	if err := tx.Model(&booking).Update("status", newStatus).Error; err != nil {
		return nil, "", translateStoreErr(err)
	}
	booking.Status = newStatus

	if oldStatus != newStatus {
		s.notifier.BookingStatusChanged(&booking, oldStatus, newStatus)
	}

	return &booking, oldStatus, nil
}

// Get loads one booking.
func (s *BookingService) Get(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	var booking models.Booking
	if err := s.db.WithContext(ctx).First(&booking, "id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking not found", ErrNotFound)
		}
		return nil, translateStoreErr(err)
	}
	return &booking, nil
}

// ListForCustomer returns the customer's bookings, newest date first.
func (s *BookingService) ListForCustomer(ctx context.Context, customerID uuid.UUID, status string) ([]models.Booking, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	query := s.db.WithContext(ctx).Where("customer_id = ?", customerID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var bookings []models.Booking
	if err := query.Order("date DESC").Find(&bookings).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	return bookings, nil
}

// List returns bookings for the admin view, newest first.
func (s *BookingService) List(ctx context.Context, filters BookingFilters) ([]models.Booking, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	query := s.db.WithContext(ctx).Model(&models.Booking{})
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Date != "" {
		query = query.Where("date = ?", filters.Date)
	}
	if filters.ServiceID != "" {
		query = query.Where("service_id = ?", filters.ServiceID)
	}

	var bookings []models.Booking
	if err := query.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	return bookings, nil
}
