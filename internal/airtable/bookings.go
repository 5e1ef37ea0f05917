package airtable

import (
	"context"
	"fmt"
)

// BookingFields is one Bookings row keyed by the table's column names.
// Car holds linked record ids; it stays empty for tour transfers.
type BookingFields struct {
	CustomerName   string   `json:"CustomerName"`
	Email          string   `json:"Email"`
	Phone          string   `json:"Phone"`
	Car            []string `json:"Car"`
	StartDate      string   `json:"StartDate"`
	EndDate        string   `json:"EndDate,omitempty"`
	Type           string   `json:"Type"`
	AgeConfirmed   bool     `json:"AgeConfirmed"`
	TermsConfirmed bool     `json:"TermsConfirmed"`
	TransferDesc   string   `json:"TransferDesc,omitempty"`
}

// CreateBooking inserts one row into the Bookings table and returns the new
// record's id. The write is a single insert with no follow-up; a transient
// failure retried by the caller can create a duplicate row.
func (c *Client) CreateBooking(ctx context.Context, fields BookingFields) (string, error) {
	if fields.Car == nil {
		fields.Car = []string{}
	}

	payload := map[string]interface{}{
		"records": []map[string]interface{}{
			{"fields": fields},
		},
	}

	var created struct {
		Records []Record `json:"records"`
	}
	if err := c.do(ctx, "POST", c.tableURL(bookingsTable), payload, &created); err != nil {
		return "", err
	}

	if len(created.Records) == 0 {
		return "", fmt.Errorf("record store returned no created records")
	}
	return created.Records[0].ID, nil
}
