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

// CatalogService manages the service catalog and its pricing view.
type CatalogService struct {
	db      *gorm.DB
	pricing *PricingResolver
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db, pricing: NewPricingResolver(db)}
}

type CreateServiceInput struct {
	Title       string
	Description string
	BasePrice   float64
	Duration    int
	Status      string
}

type UpdateServiceInput struct {
	Title       *string
	Description *string
	BasePrice   *float64
	Duration    *int
	Status      *string
}

// PricedService is a catalog entry with today's discount applied.
type PricedService struct {
	models.Service
	HasDiscount   bool     `json:"has_discount"`
	DiscountType  string   `json:"discount_type,omitempty"`
	DiscountValue *float64 `json:"discount_value,omitempty"`
	FinalPrice    float64  `json:"final_price"`
}

// DeleteOutcome tells the caller whether the service was removed or only
// deactivated because it still has Pending/Confirmed bookings.
type DeleteOutcome struct {
	Deactivated bool
}

func (s *CatalogService) Create(ctx context.Context, in CreateServiceInput) (*models.Service, error) {
	if in.BasePrice <= 0 {
		return nil, fmt.Errorf("%w: base price must be greater than 0", ErrValidation)
	}
	if in.Duration <= 0 {
		return nil, fmt.Errorf("%w: duration must be greater than 0", ErrValidation)
	}
	status := in.Status
	if status == "" {
		status = models.ServiceActive
	}
	if status != models.ServiceActive && status != models.ServiceInactive {
		return nil, fmt.Errorf("%w: status must be Active or Inactive", ErrValidation)
	}

	ctx, cancel := storeContext(ctx)
	defer cancel()

	service := models.Service{
		Title:       in.Title,
		Description: in.Description,
		BasePrice:   in.BasePrice,
		Duration:    in.Duration,
		Status:      status,
	}
	if err := s.db.WithContext(ctx).Create(&service).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	return &service, nil
}

// withPricing decorates a service with today's discount, if any.
func (s *CatalogService) withPricing(ctx context.Context, service models.Service) (PricedService, error) {
	priced := PricedService{Service: service, FinalPrice: service.BasePrice}

	discount, err := s.pricing.ActiveDiscount(ctx, service.ID, utils.Today())
	if err != nil {
		return priced, err
	}
	if discount != nil {
		priced.HasDiscount = true
		priced.DiscountType = discount.DiscountType
		priced.DiscountValue = &discount.DiscountValue
		priced.FinalPrice = CalculateDiscountedPrice(service.BasePrice, discount.DiscountType, discount.DiscountValue)
	}
	return priced, nil
}

// Get returns one catalog entry with pricing.
func (s *CatalogService) Get(ctx context.Context, serviceID uuid.UUID) (*PricedService, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	var service models.Service
	if err := s.db.WithContext(ctx).First(&service, "id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: service not found", ErrNotFound)
		}
		return nil, translateStoreErr(err)
	}

	priced, err := s.withPricing(ctx, service)
	if err != nil {
		return nil, err
	}
	return &priced, nil
}

// List returns the catalog with pricing, newest first, optionally filtered
// by status.
func (s *CatalogService) List(ctx context.Context, status string) ([]PricedService, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	query := s.db.WithContext(ctx).Model(&models.Service{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var services []models.Service
	if err := query.Order("created_at DESC").Find(&services).Error; err != nil {
		return nil, translateStoreErr(err)
	}

	priced := make([]PricedService, 0, len(services))
	for _, service := range services {
		p, err := s.withPricing(ctx, service)
		if err != nil {
			return nil, err
		}
		priced = append(priced, p)
	}
	return priced, nil
}

func (s *CatalogService) Update(ctx context.Context, serviceID uuid.UUID, in UpdateServiceInput) (*models.Service, error) {
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

	updates := map[string]interface{}{}
	if in.Title != nil {
		updates["title"] = *in.Title
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.BasePrice != nil {
		if *in.BasePrice <= 0 {
			return nil, fmt.Errorf("%w: base price must be greater than 0", ErrValidation)
		}
		updates["base_price"] = *in.BasePrice
	}
	if in.Duration != nil {
		if *in.Duration <= 0 {
			return nil, fmt.Errorf("%w: duration must be greater than 0", ErrValidation)
		}
		updates["duration"] = *in.Duration
	}
	if in.Status != nil {
		if *in.Status != models.ServiceActive && *in.Status != models.ServiceInactive {
			return nil, fmt.Errorf("%w: status must be Active or Inactive", ErrValidation)
		}
		updates["status"] = *in.Status
	}

	if err := tx.Model(&service).Updates(updates).Error; err != nil {
		return nil, translateStoreErr(err)
	}

	var updated models.Service
	if err := tx.First(&updated, "id = ?", serviceID).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	return &updated, nil
}

// Delete removes a service outright only when it has no Pending or Confirmed
// bookings; otherwise it is deactivated and history stays intact. A hard
// delete cascades to the service's discounts.
func (s *CatalogService) Delete(ctx context.Context, serviceID uuid.UUID) (*DeleteOutcome, error) {
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

	var activeBookings int64
	err := tx.Model(&models.Booking{}).
		Where("service_id = ? AND status IN ?", serviceID,
			[]string{models.BookingPending, models.BookingConfirmed}).
		Count(&activeBookings).Error
	if err != nil {
		return nil, translateStoreErr(err)
	}

	if activeBookings > 0 {
		if err := tx.Model(&service).Update("status", models.ServiceInactive).Error; err != nil {
			return nil, translateStoreErr(err)
		}
		return &DeleteOutcome{Deactivated: true}, nil
	}

	if err := tx.Delete(&service).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	if err := tx.Where("service_id = ?", serviceID).Delete(&models.Discount{}).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	return &DeleteOutcome{Deactivated: false}, nil
}
