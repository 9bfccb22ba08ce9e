package services

import (
	"context"
	"math"
	"time"

	"gorm.io/gorm"

	"salonshop-backend/models"
	"salonshop-backend/utils"
)

// DashboardService computes the admin counters and revenue aggregates. The
// reads are not transactionally consistent with concurrent writes; that is
// acceptable for dashboard numbers.
type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type DashboardSummary struct {
	TotalBookings       int64 `json:"total_bookings"`
	TodaysBookings      int64 `json:"todays_bookings"`
	ConfirmedBookings   int64 `json:"confirmed_bookings"`
	CompletedBookings   int64 `json:"completed_bookings"`
	CancelledBookings   int64 `json:"cancelled_bookings"`
	ActiveServicesCount int64 `json:"active_services_count"`
	ActiveStaffCount    int64 `json:"active_staff_count"`
}

type DashboardStats struct {
	Customers struct {
		Total int64 `json:"total"`
	} `json:"customers"`
	Services struct {
		Total  int64 `json:"total"`
		Active int64 `json:"active"`
	} `json:"services"`
	Staff struct {
		Active int64 `json:"active"`
	} `json:"staff"`
	Bookings struct {
		Total     int64 `json:"total"`
		Pending   int64 `json:"pending"`
		Confirmed int64 `json:"confirmed"`
		Completed int64 `json:"completed"`
		Cancelled int64 `json:"cancelled"`
		Today     int64 `json:"today"`
	} `json:"bookings"`
	Revenue struct {
		Total     float64 `json:"total"`
		ThisMonth float64 `json:"this_month"`
	} `json:"revenue"`
	Discounts struct {
		Active int64 `json:"active"`
	} `json:"discounts"`
}

type ServiceRevenue struct {
	ServiceID    string  `json:"service_id"`
	ServiceTitle string  `json:"service_title"`
	TotalRevenue float64 `json:"total_revenue"`
	BookingCount int64   `json:"booking_count"`
}

type DateBookings struct {
	Date    string  `json:"date"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

type TopService struct {
	ServiceID    string `json:"service_id"`
	ServiceTitle string `json:"service_title"`
	BookingCount int64  `json:"booking_count"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func (s *DashboardService) countBookings(tx *gorm.DB, conds ...interface{}) int64 {
	var n int64
	q := tx.Model(&models.Booking{})
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	q.Count(&n)
	return n
}

// Summary returns the single dashboard summary block.
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()
	tx := s.db.WithContext(ctx)

	today := utils.Today()

	summary := &DashboardSummary{
		TotalBookings:     s.countBookings(tx),
		TodaysBookings:    s.countBookings(tx, "date = ?", today),
		ConfirmedBookings: s.countBookings(tx, "status = ?", models.BookingConfirmed),
		CompletedBookings: s.countBookings(tx, "status = ?", models.BookingCompleted),
		CancelledBookings: s.countBookings(tx, "status = ?", models.BookingCancelled),
	}
	if err := tx.Model(&models.Service{}).Where("status = ?", models.ServiceActive).
		Count(&summary.ActiveServicesCount).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	if err := tx.Model(&models.Staff{}).Where("status = ? AND is_deleted = ?", models.StaffActive, false).
		Count(&summary.ActiveStaffCount).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	return summary, nil
}

// Stats returns the extended dashboard statistics, including revenue over
// Completed bookings for all time and since the first of the month.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()
	tx := s.db.WithContext(ctx)

	stats := &DashboardStats{}

	if err := tx.Model(&models.User{}).Where("role = ?", models.RoleCustomer).
		Count(&stats.Customers.Total).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	if err := tx.Model(&models.Service{}).Count(&stats.Services.Total).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	tx.Model(&models.Service{}).Where("status = ?", models.ServiceActive).Count(&stats.Services.Active)
	tx.Model(&models.Staff{}).Where("status = ? AND is_deleted = ?", models.StaffActive, false).
		Count(&stats.Staff.Active)

	stats.Bookings.Total = s.countBookings(tx)
	stats.Bookings.Pending = s.countBookings(tx, "status = ?", models.BookingPending)
	stats.Bookings.Confirmed = s.countBookings(tx, "status = ?", models.BookingConfirmed)
	stats.Bookings.Completed = s.countBookings(tx, "status = ?", models.BookingCompleted)
	stats.Bookings.Cancelled = s.countBookings(tx, "status = ?", models.BookingCancelled)

	today := utils.Today()
	stats.Bookings.Today = s.countBookings(tx, "date = ?", today)

	var totalRevenue float64
	if err := tx.Model(&models.Booking{}).
		Where("status = ?", models.BookingCompleted).
		Select("COALESCE(SUM(final_price), 0)").Scan(&totalRevenue).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	stats.Revenue.Total = round2(totalRevenue)

	firstOfMonth := time.Now().Format("2006-01") + "-01"
	var monthlyRevenue float64
	if err := tx.Model(&models.Booking{}).
		Where("status = ? AND date >= ?", models.BookingCompleted, firstOfMonth).
		Select("COALESCE(SUM(final_price), 0)").Scan(&monthlyRevenue).Error; err != nil {
		return nil, translateStoreErr(err)
	}
	stats.Revenue.ThisMonth = round2(monthlyRevenue)

	tx.Model(&models.Discount{}).
		Where("is_active = ? AND start_date <= ? AND end_date >= ?", true, today, today).
		Count(&stats.Discounts.Active)

	return stats, nil
}

// RecentBookings returns the latest bookings for the dashboard feed.
func (s *DashboardService) RecentBookings(ctx context.Context, limit int) ([]models.Booking, error) {
	if limit <= 0 {
		limit = 10
	}

	ctx, cancel := storeContext(ctx)
	defer cancel()

	var bookings []models.Booking
	err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&bookings).Error
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return bookings, nil
}

// RevenueByService breaks Completed revenue down per service.
func (s *DashboardService) RevenueByService(ctx context.Context) ([]ServiceRevenue, error) {
	ctx, cancel := storeContext(ctx)
	defer cancel()

	var rows []ServiceRevenue
	err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Select("service_id, service_title, SUM(final_price) AS total_revenue, COUNT(*) AS booking_count").
		Where("status = ?", models.BookingCompleted).
		Group("service_id, service_title").
		Order("total_revenue DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, translateStoreErr(err)
	}
	for i := range rows {
		rows[i].TotalRevenue = round2(rows[i].TotalRevenue)
	}
	return rows, nil
}

// BookingsByDate returns per-day booking counts and Completed revenue for
// the last N days.
func (s *DashboardService) BookingsByDate(ctx context.Context, days int) ([]DateBookings, error) {
	if days <= 0 {
		days = 30
	}
	startDate := time.Now().AddDate(0, 0, -days).Format(utils.DateLayout)

	ctx, cancel := storeContext(ctx)
	defer cancel()

	var rows []DateBookings
	err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Select("date, COUNT(*) AS count, SUM(CASE WHEN status = ? THEN final_price ELSE 0 END) AS revenue",
			models.BookingCompleted).
		Where("date >= ?", startDate).
		Group("date").
		Order("date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translateStoreErr(err)
	}
	for i := range rows {
		rows[i].Revenue = round2(rows[i].Revenue)
	}
	return rows, nil
}

// TopServices ranks services by booking count.
func (s *DashboardService) TopServices(ctx context.Context, limit int) ([]TopService, error) {
	if limit <= 0 {
		limit = 5
	}

	ctx, cancel := storeContext(ctx)
	defer cancel()

	var rows []TopService
	err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Select("service_id, service_title, COUNT(*) AS booking_count").
		Group("service_id, service_title").
		Order("booking_count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, translateStoreErr(err)
	}
	return rows, nil
}
