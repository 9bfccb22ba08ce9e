package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonshop-backend/models"
)

func TestCreateDiscount(t *testing.T) {
	db := newTestDB(t)
	svc := NewDiscountService(db)
	service := seedService(t, db, "Haircut", 100)

	discount, err := svc.Create(context.Background(), CreateDiscountInput{
		ServiceID:     service.ID.String(),
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 25,
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-30",
	})
	require.NoError(t, err)

	assert.True(t, discount.IsActive)
	assert.Equal(t, "Haircut", discount.ServiceTitle)
}

func TestCreateDiscountValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewDiscountService(db)
	service := seedService(t, db, "Haircut", 100)

	base := CreateDiscountInput{
		ServiceID:     service.ID.String(),
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 25,
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-30",
	}

	cases := []struct {
		name   string
		mutate func(in *CreateDiscountInput)
	}{
		{"bad service id", func(in *CreateDiscountInput) { in.ServiceID = "nope" }},
		{"bad type", func(in *CreateDiscountInput) { in.DiscountType = "bogo" }},
		{"zero value", func(in *CreateDiscountInput) { in.DiscountValue = 0 }},
		{"negative value", func(in *CreateDiscountInput) { in.DiscountValue = -5 }},
		{"percentage over 100", func(in *CreateDiscountInput) { in.DiscountValue = 150 }},
		{"bad start date", func(in *CreateDiscountInput) { in.StartDate = "09/01/2026" }},
		{"start after end", func(in *CreateDiscountInput) { in.StartDate = "2026-10-01" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.mutate(&in)
			_, err := svc.Create(context.Background(), in)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}

	// A flat discount larger than 100 is fine; the floor is applied at
	// booking time.
	in := base
	in.DiscountType = models.DiscountFlat
	in.DiscountValue = 150
	_, err := svc.Create(context.Background(), in)
	assert.NoError(t, err)
}

func TestCreateDiscountUnknownService(t *testing.T) {
	db := newTestDB(t)
	svc := NewDiscountService(db)

	_, err := svc.Create(context.Background(), CreateDiscountInput{
		ServiceID:     uuid.NewString(),
		DiscountType:  models.DiscountFlat,
		DiscountValue: 10,
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-30",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreateDiscountOverlap(t *testing.T) {
	db := newTestDB(t)
	svc := NewDiscountService(db)
	haircut := seedService(t, db, "Haircut", 100)
	massage := seedService(t, db, "Massage", 60)

	_, err := svc.Create(context.Background(), CreateDiscountInput{
		ServiceID:     haircut.ID.String(),
		DiscountType:  models.DiscountFlat,
		DiscountValue: 10,
		StartDate:     "2026-09-10",
		EndDate:       "2026-09-20",
	})
	require.NoError(t, err)

	overlapping := []struct {
		name             string
		start, end       string
	}{
		{"inside", "2026-09-12", "2026-09-15"},
		{"covers", "2026-09-01", "2026-09-30"},
		{"left edge touches", "2026-09-01", "2026-09-10"},
		{"right edge touches", "2026-09-20", "2026-09-30"},
	}
	for _, tc := range overlapping {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), CreateDiscountInput{
				ServiceID:     haircut.ID.String(),
				DiscountType:  models.DiscountFlat,
				DiscountValue: 5,
				StartDate:     tc.start,
				EndDate:       tc.end,
			})
			assert.ErrorIs(t, err, ErrConflict)
		})
	}

	// Adjacent but not touching is allowed.
	_, err = svc.Create(context.Background(), CreateDiscountInput{
		ServiceID:     haircut.ID.String(),
		DiscountType:  models.DiscountFlat,
		DiscountValue: 5,
		StartDate:     "2026-09-21",
		EndDate:       "2026-09-30",
	})
	assert.NoError(t, err)

	// A different service may overlap freely.
	_, err = svc.Create(context.Background(), CreateDiscountInput{
		ServiceID:     massage.ID.String(),
		DiscountType:  models.DiscountFlat,
		DiscountValue: 5,
		StartDate:     "2026-09-12",
		EndDate:       "2026-09-15",
	})
	assert.NoError(t, err)
}

func TestDeleteDiscountFreesWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewDiscountService(db)
	service := seedService(t, db, "Haircut", 100)

	first, err := svc.Create(context.Background(), CreateDiscountInput{
		ServiceID:     service.ID.String(),
		DiscountType:  models.DiscountFlat,
		DiscountValue: 10,
		StartDate:     "2026-09-10",
		EndDate:       "2026-09-20",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), first.ID))

	got, err := svc.Get(context.Background(), first.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	// Deactivated windows no longer block new ones.
	_, err = svc.Create(context.Background(), CreateDiscountInput{
		ServiceID:     service.ID.String(),
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 15,
		StartDate:     "2026-09-10",
		EndDate:       "2026-09-20",
	})
	assert.NoError(t, err)
}

func TestUpdateDiscount(t *testing.T) {
	db := newTestDB(t)
	svc := NewDiscountService(db)
	service := seedService(t, db, "Haircut", 100)

	discount, err := svc.Create(context.Background(), CreateDiscountInput{
		ServiceID:     service.ID.String(),
		DiscountType:  models.DiscountPercentage,
		DiscountValue: 25,
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-30",
	})
	require.NoError(t, err)

	// Cross-field checks run against the merged values: raising the value
	// above 100 on a still-percentage discount fails.
	big := 150.0
	_, err = svc.Update(context.Background(), discount.ID, UpdateDiscountInput{DiscountValue: &big})
	assert.ErrorIs(t, err, ErrValidation)

	// Switching to flat in the same update makes the value legal.
	flat := models.DiscountFlat
	updated, err := svc.Update(context.Background(), discount.ID, UpdateDiscountInput{
		DiscountType:  &flat,
		DiscountValue: &big,
	})
	require.NoError(t, err)
	assert.Equal(t, models.DiscountFlat, updated.DiscountType)
	assert.Equal(t, 150.0, updated.DiscountValue)

	// Moving the end before the existing start fails.
	badEnd := "2026-08-01"
	_, err = svc.Update(context.Background(), discount.ID, UpdateDiscountInput{EndDate: &badEnd})
	assert.ErrorIs(t, err, ErrValidation)

	inactive := false
	updated, err = svc.Update(context.Background(), discount.ID, UpdateDiscountInput{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestListDiscounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewDiscountService(db)
	haircut := seedService(t, db, "Haircut", 100)
	massage := seedService(t, db, "Massage", 60)

	first, err := svc.Create(context.Background(), CreateDiscountInput{
		ServiceID:     haircut.ID.String(),
		DiscountType:  models.DiscountFlat,
		DiscountValue: 10,
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-10",
	})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), CreateDiscountInput{
		ServiceID:     massage.ID.String(),
		DiscountType:  models.DiscountFlat,
		DiscountValue: 5,
		StartDate:     "2026-09-01",
		EndDate:       "2026-09-10",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(context.Background(), first.ID))

	all, err := svc.List(context.Background(), DiscountFilters{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, d := range all {
		assert.NotEmpty(t, d.ServiceTitle)
	}

	active := true
	onlyActive, err := svc.List(context.Background(), DiscountFilters{IsActive: &active})
	require.NoError(t, err)
	assert.Len(t, onlyActive, 1)

	byService, err := svc.List(context.Background(), DiscountFilters{ServiceID: haircut.ID.String()})
	require.NoError(t, err)
	assert.Len(t, byService, 1)
}
