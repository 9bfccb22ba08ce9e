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

// AttendanceService keeps one check-in/check-out cycle per staff member per
// calendar day.
type AttendanceService struct {
	db *gorm.DB
}

func NewAttendanceService(db *gorm.DB) *AttendanceService {
	return &AttendanceService{db: db}
}

type CheckInInput struct {
	StaffID     string
	Date        string
	CheckInTime string // defaults to the current time of day
}

type CheckOutInput struct {
	StaffID          string
	Date             string
	CheckOutTime     string // defaults to the current time of day
	AttendanceStatus string // defaults to the recorded status
}

type UpdateAttendanceInput struct {
	CheckInTime      *string
	CheckOutTime     *string
	AttendanceStatus *string
}

type AttendanceFilters struct {
	Date      string
	StaffID   string
	StartDate string
	EndDate   string
}

// CheckIn records the start of a staff member's day. The pre-check gives a
// friendly error; the unique index on (staff_id, date) is the backstop, so a
// racing duplicate insert maps to the same ErrAlreadyCheckedIn.
func (s *AttendanceService) CheckIn(ctx context.Context, in CheckInInput) (*models.Attendance, error) {
	if !utils.ValidateDateFormat(in.Date) {
		return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrValidation)
	}
	staffID, err := uuid.Parse(in.StaffID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid staff ID", ErrValidation)
	}

	checkInTime := in.CheckInTime
	if checkInTime == "" {
		checkInTime = utils.NowClock()
	}
	if !utils.ValidateTimeSlot(checkInTime) {
		return nil, fmt.Errorf("%w: invalid check_in_time format, use HH:MM", ErrValidation)
	}

	ctx, cancel := storeContext(ctx)
	defer cancel()
	tx := s.db.WithContext(ctx)

	var staff models.Staff
	if err := tx.First(&staff, "id = ? AND is_deleted = ?", staffID, false).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: staff not found or inactive", ErrNotFound)
		}
		return nil, translateStoreErr(err)
	}

	var existing int64
	err = tx.Model(&models.Attendance{}).
		Where("staff_id = ? AND date = ?", staffID, in.Date).
		Count(&existing).Error
	if err != nil {
		return nil, translateStoreErr(err)
	}
	if existing > 0 {
		return nil, ErrAlreadyCheckedIn
	}

	attendance := models.Attendance{
		StaffID:          staffID,
		StaffName:        staff.FullName,
		Date:             in.Date,
		CheckInTime:      checkInTime,
		CheckOutTime:     nil,
		AttendanceStatus: models.AttendancePresent,
	}
	if err := tx.Create(&attendance).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, translateStoreErr(err)
	}

	return &attendance, nil
}

// CheckOut closes the day's record for a staff member.
func (s *AttendanceService) CheckOut(ctx context.Context, in CheckOutInput) (*models.Attendance, error) {
	if !utils.ValidateDateFormat(in.Date) {
		return nil, fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrValidation)
	}
	staffID, err := uuid.Parse(in.StaffID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid staff ID", ErrValidation)
	}

	checkOutTime := in.CheckOutTime
	if checkOutTime == "" {
		checkOutTime = utils.NowClock()
	}
	if !utils.ValidateTimeSlot(checkOutTime) {
		return nil, fmt.Errorf("%w: invalid check_out_time format, use HH:MM", ErrValidation)
	}

	ctx, cancel := storeContext(ctx)
	defer cancel()
	tx := s.db.WithContext(ctx)

	var attendance models.Attendance
	if err := tx.First(&attendance, "staff_id = ? AND date = ?", staffID, in.Date).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no check-in record found for this staff on this date", ErrNotFound)
		}
		return nil, translateStoreErr(err)
	}

	status := in.AttendanceStatus
	if status == "" {
		status = attendance.AttendanceStatus
	}
	if !models.ValidAttendanceStatus(status) {
		return nil, fmt.Errorf("%w: attendance_status must be Present, Absent, or Half-day", ErrValidation)
	}

	updates := map[string]interface{}{
		"check_out_time":    checkOutTime,
		"attendance_status": status,
	}
	if err := tx.Model(&attendance).Updates(updates).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	attendance.CheckOutTime = &checkOutTime
	attendance.AttendanceStatus = status

	return &attendance, nil
}

// Update is the admin correction path; each supplied field is validated
// independently.
func (s *AttendanceService) Update(ctx context.Context, attendanceID uuid.UUID, in UpdateAttendanceInput) (*models.Attendance, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()
	tx := s.db.WithContext(ctx)

	var attendance models.Attendance
	if err := tx.First(&attendance, "id = ?", attendanceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: attendance record not found", ErrNotFound)
		}
		return nil, translateStoreErr(err)
	}

	updates := map[string]interface{}{}
	if in.CheckInTime != nil {
		if !utils.ValidateTimeSlot(*in.CheckInTime) {
			return nil, fmt.Errorf("%w: invalid check_in_time format, use HH:MM", ErrValidation)
		}
		updates["check_in_time"] = *in.CheckInTime
	}
	if in.CheckOutTime != nil {
		if *in.CheckOutTime != "" && !utils.ValidateTimeSlot(*in.CheckOutTime) {
			return nil, fmt.Errorf("%w: invalid check_out_time format, use HH:MM", ErrValidation)
		}
		if *in.CheckOutTime == "" {
			updates["check_out_time"] = nil
		} else {
			updates["check_out_time"] = *in.CheckOutTime
		}
	}
	if in.AttendanceStatus != nil {
		if !models.ValidAttendanceStatus(*in.AttendanceStatus) {
			return nil, fmt.Errorf("%w: attendance_status must be Present, Absent, or Half-day", ErrValidation)
		}
		updates["attendance_status"] = *in.AttendanceStatus
	}

	if err := tx.Model(&attendance).Updates(updates).Error; err != nil {
		return nil, translateStoreErr(err)
	}

	var updated models.Attendance
	if err := tx.First(&updated, "id = ?", attendanceID).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	return &updated, nil
}

// List returns attendance records, newest date first. A date range filter
// takes effect only when both ends are well-formed.
func (s *AttendanceService) List(ctx context.Context, filters AttendanceFilters) ([]models.Attendance, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	query := s.db.WithContext(ctx).Model(&models.Attendance{})
	if filters.Date != "" {
		query = query.Where("date = ?", filters.Date)
	}
	if filters.StaffID != "" {
		query = query.Where("staff_id = ?", filters.StaffID)
	}
	if filters.StartDate != "" && filters.EndDate != "" &&
		utils.ValidateDateFormat(filters.StartDate) && utils.ValidateDateFormat(filters.EndDate) {
		query = query.Where("date >= ? AND date <= ?", filters.StartDate, filters.EndDate)
	}

	var records []models.Attendance
	if err := query.Order("date DESC").Find(&records).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	return records, nil
}
