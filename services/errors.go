package services

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Domain error kinds. Handlers match with errors.Is and map them to HTTP
// status codes; wrapped detail travels in the message.
var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrServiceInactive   = errors.New("service is not available")
	ErrSlotTaken         = errors.New("this time slot is already booked")
	ErrConflict          = errors.New("an active discount already exists for this service in the specified date range")
	ErrAlreadyCheckedIn  = errors.New("check-in already recorded for this staff on this date")
	ErrInvalidTransition = errors.New("booking cannot be cancelled in its current status")
	ErrPastBooking       = errors.New("cannot cancel past bookings")
	ErrStaffDeleted      = errors.New("staff record has been deactivated")
	ErrStoreUnavailable  = errors.New("datastore unavailable")
)

// Every store call runs under this deadline so no operation can hang on an
// unreachable database.
const storeTimeout = 5 * time.Second

func storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, storeTimeout)
}

// translateStoreErr maps timeout and cancellation failures to
// ErrStoreUnavailable so callers can tell infrastructure trouble apart from
// business errors. Everything else passes through untouched.
func translateStoreErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}
