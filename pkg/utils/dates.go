package utils

import (
	"errors"
	"fmt"
	"time"
)

const (
	// MinRentalDays is the shortest rental we accept
	MinRentalDays = 2

	DateLayout = "2006-01-02"
)

// ErrMinRentalPeriod is returned when the requested rental is shorter than MinRentalDays
var ErrMinRentalPeriod = errors.New("Minimum rental period is 2 days")

// ValidateRentalDates checks the pickup/return date pair for a rental.
// Dates are plain calendar dates (YYYY-MM-DD). If either date is empty the
// pair is accepted; the rule only applies once both ends are known.
func ValidateRentalDates(pickupDate, returnDate string) error {
	if pickupDate == "" || returnDate == "" {
		return nil
	}

	start, err := time.Parse(DateLayout, pickupDate)
	if err != nil {
		return fmt.Errorf("invalid pickup date: %v", err)
	}
	end, err := time.Parse(DateLayout, returnDate)
	if err != nil {
		return fmt.Errorf("invalid return date: %v", err)
	}

	days := end.Sub(start).Hours() / 24
	if days < MinRentalDays {
		return ErrMinRentalPeriod
	}

	return nil
}
