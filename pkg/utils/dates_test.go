package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateRentalDates(t *testing.T) {
	tests := []struct {
		name       string
		pickupDate string
		returnDate string
		wantErr    error
	}{
		{"two full days is the minimum", "2025-06-01", "2025-06-03", nil},
		{"longer rentals pass", "2025-06-01", "2025-06-10", nil},
		{"one day is too short", "2025-06-01", "2025-06-02", ErrMinRentalPeriod},
		{"same day is too short", "2025-06-01", "2025-06-01", ErrMinRentalPeriod},
		{"return before pickup is too short", "2025-06-05", "2025-06-01", ErrMinRentalPeriod},
		{"empty return date passes", "2025-06-01", "", nil},
		{"empty pickup date passes", "", "2025-06-03", nil},
		{"both empty passes", "", "", nil},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateRentalDates(test.pickupDate, test.returnDate)
			if test.wantErr != nil {
				assert.ErrorIs(t, err, test.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateRentalDatesRejectsGarbage(t *testing.T) {
	assert.Error(t, ValidateRentalDates("not-a-date", "2025-06-03"))
	assert.Error(t, ValidateRentalDates("2025-06-01", "03/06/2025"))
}
