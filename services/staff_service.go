package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonshop-backend/models"
)

// StaffService manages staff records. Soft-delete is irreversible through
// this API and independent of the Active/Inactive status.
type StaffService struct {
	db *gorm.DB
}

func NewStaffService(db *gorm.DB) *StaffService {
	return &StaffService{db: db}
}

type CreateStaffInput struct {
	FullName     string
	Email        string
	Phone        string
	Role         string
	WorkingDays  models.StringList
	ShiftTimings models.ShiftTimings
	Status       string
}

type UpdateStaffInput struct {
	FullName     *string
	Email        *string
	Phone        *string
	Role         *string
	WorkingDays  *models.StringList
	ShiftTimings *models.ShiftTimings
	Status       *string
}

type StaffFilters struct {
	IncludeInactive bool
	IncludeDeleted  bool
	Status          string
}

func (s *StaffService) Create(ctx context.Context, in CreateStaffInput) (*models.Staff, error) {
	if !models.ValidStaffRole(in.Role) {
		return nil, fmt.Errorf("%w: invalid role, use: stylist, receptionist, manager, therapist", ErrValidation)
	}
	status := in.Status
	if status == "" {
		status = models.StaffActive
	}
	if status != models.StaffActive && status != models.StaffInactive {
		return nil, fmt.Errorf("%w: status must be Active or Inactive", ErrValidation)
	}

	ctx, cancel := storeContext(ctx)
	defer cancel()

	workingDays := in.WorkingDays
	if workingDays == nil {
		workingDays = models.StringList{}
	}
	staff := models.Staff{
		FullName:     in.FullName,
		Email:        in.Email,
		Phone:        in.Phone,
		Role:         in.Role,
		WorkingDays:  workingDays,
		ShiftTimings: in.ShiftTimings,
		Status:       status,
		IsDeleted:    false,
	}
	if err := s.db.WithContext(ctx).Create(&staff).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	return &staff, nil
}

// Get returns one staff member. Fetching a soft-deleted record directly is
// its own failure (the record is gone, not missing).
func (s *StaffService) Get(ctx context.Context, staffID uuid.UUID) (*models.Staff, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	var staff models.Staff
	if err := s.db.WithContext(ctx).First(&staff, "id = ?", staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: staff not found", ErrNotFound)
		}
		return nil, translateStoreErr(err)
	}
	if staff.IsDeleted {
		return nil, ErrStaffDeleted
	}
	return &staff, nil
}

// List returns staff newest first. Soft-deleted records are excluded unless
// asked for; with no filters at all, only Active staff are returned.
func (s *StaffService) List(ctx context.Context, filters StaffFilters) ([]models.Staff, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	query := s.db.WithContext(ctx).Model(&models.Staff{})
	if !filters.IncludeDeleted {
		query = query.Where("is_deleted = ?", false)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	} else if !filters.IncludeDeleted && !filters.IncludeInactive {
		query = query.Where("status = ?", models.StaffActive)
	}

	var staff []models.Staff
	if err := query.Order("created_at DESC").Find(&staff).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	return staff, nil
}

func (s *StaffService) Update(ctx context.Context, staffID uuid.UUID, in UpdateStaffInput) (*models.Staff, error) {
	if in.Role != nil && !models.ValidStaffRole(*in.Role) {
		return nil, fmt.Errorf("%w: invalid role", ErrValidation)
	}
	if in.Status != nil && *in.Status != models.StaffActive && *in.Status != models.StaffInactive {
		return nil, fmt.Errorf("%w: status must be Active or Inactive", ErrValidation)
	}

	ctx, cancel := storeContext(ctx)
	defer cancel()
	tx := s.db.WithContext(ctx)

	var staff models.Staff
	if err := tx.First(&staff, "id = ? AND is_deleted = ?", staffID, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: staff not found", ErrNotFound)
		}
		return nil, translateStoreErr(err)
	}

	updates := map[string]interface{}{}
	if in.FullName != nil {
		updates["full_name"] = *in.FullName
	}
	if in.Email != nil {
		updates["email"] = *in.Email
	}
	if in.Phone != nil {
		updates["phone"] = *in.Phone
	}
	if in.Role != nil {
		updates["role"] = *in.Role
	}
	if in.WorkingDays != nil {
		updates["working_days"] = *in.WorkingDays
	}
	if in.ShiftTimings != nil {
		updates["shift_timings"] = *in.ShiftTimings
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}

	if err := tx.Model(&staff).Updates(updates).Error; err != nil {
		return nil, translateStoreErr(err)
	}

	var updated models.Staff
	if err := tx.First(&updated, "id = ?", staffID).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	return &updated, nil
}

// Deactivate soft-deletes a staff member and marks them Inactive. Calling it
// again is a no-op.
func (s *StaffService) Deactivate(ctx context.Context, staffID uuid.UUID) (alreadyDeleted bool, err error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()
	tx := s.db.WithContext(ctx)

	var staff models.Staff
	if err := tx.First(&staff, "id = ?", staffID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("%w: staff not found", ErrNotFound)
		}
		return false, translateStoreErr(err)
	}
	if staff.IsDeleted {
		return true, nil
	}

	updates := map[string]interface{}{
		"is_deleted": true,
		"status":     models.StaffInactive,
	}
	if err := tx.Model(&staff).Updates(updates).Error; err != nil {
		return false, translateStoreErr(err)
	}
	return false, nil
}
