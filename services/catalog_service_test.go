package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonshop-backend/models"
)

func TestCreateService(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)

	service, err := svc.Create(context.Background(), CreateServiceInput{
		Title:       "Haircut",
		Description: "A classic cut",
		BasePrice:   45,
		Duration:    30,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ServiceActive, service.Status)

	_, err = svc.Create(context.Background(), CreateServiceInput{
		Title: "Free cut", Description: "x", BasePrice: 0, Duration: 30})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), CreateServiceInput{
		Title: "Instant cut", Description: "x", BasePrice: 45, Duration: -1})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), CreateServiceInput{
		Title: "Odd cut", Description: "x", BasePrice: 45, Duration: 30, Status: "Paused"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGetServiceWithPricing(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)
	service := seedService(t, db, "Haircut", 100)

	priced, err := svc.Get(context.Background(), service.ID)
	require.NoError(t, err)
	assert.False(t, priced.HasDiscount)
	assert.Equal(t, 100.0, priced.FinalPrice)

	discount := models.Discount{
		ServiceID: service.ID, DiscountType: models.DiscountPercentage, DiscountValue: 20,
		StartDate: dateFromNow(0), EndDate: dateFromNow(7), IsActive: true,
	}
	require.NoError(t, db.Create(&discount).Error)

	priced, err = svc.Get(context.Background(), service.ID)
	require.NoError(t, err)
	assert.True(t, priced.HasDiscount)
	assert.Equal(t, models.DiscountPercentage, priced.DiscountType)
	require.NotNil(t, priced.DiscountValue)
	assert.Equal(t, 20.0, *priced.DiscountValue)
	assert.Equal(t, 80.0, priced.FinalPrice)

	_, err = svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListServices(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)
	seedService(t, db, "Haircut", 100)
	inactive := seedService(t, db, "Perm", 120)
	require.NoError(t, db.Model(inactive).Update("status", models.ServiceInactive).Error)

	all, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active, err := svc.List(context.Background(), models.ServiceActive)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Haircut", active[0].Title)
}

func TestUpdateService(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)
	service := seedService(t, db, "Haircut", 100)

	newPrice := 120.0
	newStatus := models.ServiceInactive
	updated, err := svc.Update(context.Background(), service.ID, UpdateServiceInput{
		BasePrice: &newPrice,
		Status:    &newStatus,
	})
	require.NoError(t, err)
	assert.Equal(t, 120.0, updated.BasePrice)
	assert.Equal(t, models.ServiceInactive, updated.Status)
	// Untouched fields survive.
	assert.Equal(t, "Haircut", updated.Title)

	badPrice := -1.0
	_, err = svc.Update(context.Background(), service.ID, UpdateServiceInput{BasePrice: &badPrice})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(context.Background(), uuid.New(), UpdateServiceInput{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteServiceWithActiveBookingsDeactivates(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)
	service := seedService(t, db, "Haircut", 100)
	customer := seedCustomer(t, db, "Alice", "alice@example.com")

	bookings := NewBookingService(db, NoopNotifier{})
	_, err := bookings.Create(context.Background(), customer.ID, CreateBookingInput{
		ServiceID: service.ID.String(),
		Date:      dateFromNow(3),
		TimeSlot:  "14:00",
	})
	require.NoError(t, err)

	outcome, err := svc.Delete(context.Background(), service.ID)
	require.NoError(t, err)
	assert.True(t, outcome.Deactivated)

	var kept models.Service
	require.NoError(t, db.First(&kept, "id = ?", service.ID).Error)
	assert.Equal(t, models.ServiceInactive, kept.Status)
}

func TestDeleteServiceCascadesDiscounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)
	service := seedService(t, db, "Haircut", 100)

	discount := models.Discount{
		ServiceID: service.ID, DiscountType: models.DiscountFlat, DiscountValue: 10,
		StartDate: "2026-09-01", EndDate: "2026-09-30", IsActive: true,
	}
	require.NoError(t, db.Create(&discount).Error)

	// Completed and Cancelled history does not block deletion.
	customer := seedCustomer(t, db, "Alice", "alice@example.com")
	booking := models.Booking{
		CustomerID: customer.ID, ServiceID: service.ID, ServiceTitle: service.Title,
		Date: "2026-01-10", TimeSlot: "10:00", BasePrice: 100, FinalPrice: 100,
		Status: models.BookingCompleted,
	}
	require.NoError(t, db.Create(&booking).Error)

	outcome, err := svc.Delete(context.Background(), service.ID)
	require.NoError(t, err)
	assert.False(t, outcome.Deactivated)

	var services int64
	require.NoError(t, db.Model(&models.Service{}).Where("id = ?", service.ID).Count(&services).Error)
	assert.EqualValues(t, 0, services)

	var discounts int64
	require.NoError(t, db.Model(&models.Discount{}).Where("service_id = ?", service.ID).Count(&discounts).Error)
	assert.EqualValues(t, 0, discounts)
}
