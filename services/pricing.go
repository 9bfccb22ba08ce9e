package services

import (
	"context"
	"errors"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonshop-backend/models"
	"salonshop-backend/utils"
)

// PricingResolver decides what a service costs on a given day.
type PricingResolver struct {
	db *gorm.DB
}

func NewPricingResolver(db *gorm.DB) *PricingResolver {
	return &PricingResolver{db: db}
}

// ActiveDiscount returns the discount in effect for the service on asOf, or
// nil if there is none. Windows are inclusive; the fixed-width date format
// makes the string comparison safe. If overlapping active windows ever exist
// (the window manager prevents them, but not transactionally), the most
// recently created one wins.
func (r *PricingResolver) ActiveDiscount(ctx context.Context, serviceID uuid.UUID, asOf string) (*models.Discount, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	var discount models.Discount
	err := r.db.WithContext(ctx).
		Where("service_id = ? AND is_active = ? AND start_date <= ? AND end_date >= ?",
			serviceID, true, asOf, asOf).
		Order("created_at DESC").
		First(&discount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, translateStoreErr(err)
	}
	return &discount, nil
}

// FinalPrice resolves today's price for a service and whether a discount
// applied.
func (r *PricingResolver) FinalPrice(ctx context.Context, service *models.Service) (float64, bool, error) {
	discount, err := r.ActiveDiscount(ctx, service.ID, utils.Today())
	if err != nil {
		return 0, false, err
	}
	if discount == nil {
		return service.BasePrice, false, nil
	}
	return CalculateDiscountedPrice(service.BasePrice, discount.DiscountType, discount.DiscountValue), true, nil
}

// CalculateDiscountedPrice applies a percentage or flat discount to a base
// price. The result never goes below zero and is rounded to two decimals.
func CalculateDiscountedPrice(basePrice float64, discountType string, discountValue float64) float64 {
	var finalPrice float64
	switch discountType {
	case models.DiscountPercentage:
		finalPrice = basePrice - basePrice*(discountValue/100)
	case models.DiscountFlat:
		finalPrice = basePrice - discountValue
	default:
		finalPrice = basePrice
	}
	if finalPrice < 0 {
		return 0
	}
	return math.Round(finalPrice*100) / 100
}
