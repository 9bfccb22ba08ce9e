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

// DiscountService manages per-service discount windows and keeps active
// windows on the same service from overlapping.
type DiscountService struct {
	db *gorm.DB
}

func NewDiscountService(db *gorm.DB) *DiscountService {
	return &DiscountService{db: db}
}

type CreateDiscountInput struct {
	ServiceID     string
	DiscountType  string
	DiscountValue float64
	StartDate     string
	EndDate       string
}

type UpdateDiscountInput struct {
	DiscountType  *string
	DiscountValue *float64
	StartDate     *string
	EndDate       *string
	IsActive      *bool
}

type DiscountFilters struct {
	ServiceID string
	IsActive  *bool
}

func validateDiscountValue(discountType string, value float64) error {
	if value <= 0 {
		return fmt.Errorf("%w: discount value must be greater than 0", ErrValidation)
	}
	if discountType == models.DiscountPercentage && value > 100 {
		return fmt.Errorf("%w: percentage discount cannot exceed 100%%", ErrValidation)
	}
	return nil
}

// Create adds a discount window. Fails with ErrConflict when another active
// discount on the same service has an overlapping [start, end] window
// (inclusive overlap test).
func (s *DiscountService) Create(ctx context.Context, in CreateDiscountInput) (*models.Discount, error) {
	serviceID, err := uuid.Parse(in.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid service ID", ErrValidation)
	}
	if in.DiscountType != models.DiscountPercentage && in.DiscountType != models.DiscountFlat {
		return nil, fmt.Errorf("%w: discount type must be \"percentage\" or \"flat\"", ErrValidation)
	}
	if err := validateDiscountValue(in.DiscountType, in.DiscountValue); err != nil {
		return nil, err
	}
	if !utils.ValidateDateFormat(in.StartDate) || !utils.ValidateDateFormat(in.EndDate) {
		return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrValidation)
	}
	if in.StartDate > in.EndDate {
		return nil, fmt.Errorf("%w: start date must be before end date", ErrValidation)
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

	var overlapping int64
	err = tx.Model(&models.Discount{}).
		Where("service_id = ? AND is_active = ? AND start_date <= ? AND end_date >= ?",
			serviceID, true, in.EndDate, in.StartDate).
		Count(&overlapping).Error
	if err != nil {
		return nil, translateStoreErr(err)
	}
	if overlapping > 0 {
		return nil, ErrConflict
	}

	discount := models.Discount{
		ServiceID:     serviceID,
		DiscountType:  in.DiscountType,
		DiscountValue: in.DiscountValue,
		StartDate:     in.StartDate,
		EndDate:       in.EndDate,
		IsActive:      true,
	}
	if err := tx.Create(&discount).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	discount.ServiceTitle = service.Title

	return &discount, nil
}

// Update re-validates changed fields against the creation rules, using the
// merged existing+incoming values for the cross-field checks (date ordering,
// percentage bound against a possibly-unchanged type).
func (s *DiscountService) Update(ctx context.Context, discountID uuid.UUID, in UpdateDiscountInput) (*models.Discount, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()
	tx := s.db.WithContext(ctx)

	var discount models.Discount
	if err := tx.First(&discount, "id = ?", discountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: discount not found", ErrNotFound)
		}
		return nil, translateStoreErr(err)
	}

	updates := map[string]interface{}{}

	discountType := discount.DiscountType
	if in.DiscountType != nil {
		if *in.DiscountType != models.DiscountPercentage && *in.DiscountType != models.DiscountFlat {
			return nil, fmt.Errorf("%w: discount type must be \"percentage\" or \"flat\"", ErrValidation)
		}
		discountType = *in.DiscountType
		updates["discount_type"] = discountType
	}
	if in.DiscountValue != nil {
		if err := validateDiscountValue(discountType, *in.DiscountValue); err != nil {
			return nil, err
		}
		updates["discount_value"] = *in.DiscountValue
	}

	startDate := discount.StartDate
	if in.StartDate != nil {
		if !utils.ValidateDateFormat(*in.StartDate) {
			return nil, fmt.Errorf("%w: invalid start date format, use YYYY-MM-DD", ErrValidation)
		}
		startDate = *in.StartDate
		updates["start_date"] = startDate
	}
	endDate := discount.EndDate
	if in.EndDate != nil {
		if !utils.ValidateDateFormat(*in.EndDate) {
			return nil, fmt.Errorf("%w: invalid end date format, use YYYY-MM-DD", ErrValidation)
		}
		endDate = *in.EndDate
		updates["end_date"] = endDate
	}
	if startDate > endDate {
		return nil, fmt.Errorf("%w: start date must be before end date", ErrValidation)
	}

	if in.IsActive != nil {
		updates["is_active"] = *in.IsActive
	}

	if err := tx.Model(&discount).Updates(updates).Error; err != nil {
		return nil, translateStoreErr(err)
	}

	var updated models.Discount
	if err := tx.First(&updated, "id = ?", discountID).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	return &updated, nil
}

// Delete deactivates the discount; records are never physically removed.
func (s *DiscountService) Delete(ctx context.Context, discountID uuid.UUID) error {
	ctx, cancel := storeContext(ctx)
	defer cancel()
	tx := s.db.WithContext(ctx)

	var discount models.Discount
	if err := tx.First(&discount, "id = ?", discountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: discount not found", ErrNotFound)
		}
		return translateStoreErr(err)
	}

	if err := tx.Model(&discount).Update("is_active", false).Error; err != nil {
		return translateStoreErr(err)
	}
	return nil
}

// Get returns one discount enriched with its service title.
func (s *DiscountService) Get(ctx context.Context, discountID uuid.UUID) (*models.Discount, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()
	tx := s.db.WithContext(ctx)

	var discount models.Discount
	if err := tx.First(&discount, "id = ?", discountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: discount not found", ErrNotFound)
		}
		return nil, translateStoreErr(err)
	}

	var service models.Service
	if err := tx.First(&service, "id = ?", discount.ServiceID).Error; err == nil {
		discount.ServiceTitle = service.Title
	}
	return &discount, nil
}

// List returns discounts newest first, enriched with service titles.
func (s *DiscountService) List(ctx context.Context, filters DiscountFilters) ([]models.Discount, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()
	tx := s.db.WithContext(ctx)

	query := tx.Model(&models.Discount{})
	if filters.ServiceID != "" {
		query = query.Where("service_id = ?", filters.ServiceID)
	}
	if filters.IsActive != nil {
		query = query.Where("is_active = ?", *filters.IsActive)
	}

	var discounts []models.Discount
	if err := query.Order("created_at DESC").Find(&discounts).Error; err != nil {
		return nil, translateStoreErr(err)
	}

	for i := range discounts {
		var service models.Service
		if err := tx.First(&service, "id = ?", discounts[i].ServiceID).Error; err == nil {
			discounts[i].ServiceTitle = service.Title
		}
	}
	return discounts, nil
}
