package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saverentacar/saverent-backend/internal/airtable"
	"github.com/saverentacar/saverent-backend/internal/models"
	"github.com/saverentacar/saverent-backend/internal/services"
	"github.com/saverentacar/saverent-backend/pkg/utils"
	"gorm.io/gorm"
)

// BookingStore inserts booking rows into the record store.
type BookingStore interface {
	CreateBooking(ctx context.Context, fields airtable.BookingFields) (string, error)
}

// CreateBooking handles a rental booking from the fleet page. The date and
// age rules also run in the browser; they are re-checked here so a direct
// POST cannot slip under them.
func CreateBooking(db *gorm.DB, store BookingStore, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			CustomerName   string `json:"customerName" binding:"required"`
			Email          string `json:"email" binding:"required,email"`
			Phone          string `json:"phone" binding:"required"`
			CarID          string `json:"carId"`
			StartDate      string `json:"startDate" binding:"required"`
			EndDate        string `json:"endDate"`
			Type           string `json:"type" binding:"required,oneof=rental transfer"`
			AgeConfirmed   bool   `json:"ageConfirmed"`
			TermsConfirmed bool   `json:"termsConfirmed"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if !input.TermsConfirmed {
			c.JSON(400, gin.H{"error": "You must agree to the terms and conditions"})
			return
		}

		if input.Type == string(models.BookingTypeRental) {
			if !input.AgeConfirmed {
				c.JSON(400, gin.H{"error": "You must confirm you are 24 years or older to rent a vehicle"})
				return
			}
			if err := utils.ValidateRentalDates(input.StartDate, input.EndDate); err != nil {
				c.JSON(400, gin.H{"error": err.Error()})
				return
			}
		}

		fields := airtable.BookingFields{
			CustomerName:   input.CustomerName,
			Email:          input.Email,
			Phone:          input.Phone,
			Car:            []string{},
			StartDate:      input.StartDate,
			EndDate:        input.EndDate,
			Type:           input.Type,
			AgeConfirmed:   input.AgeConfirmed,
			TermsConfirmed: input.TermsConfirmed,
		}
		if input.CarID != "" {
			fields.Car = []string{input.CarID}
		}

		id, err := store.CreateBooking(c.Request.Context(), fields)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		archiveBooking(db, models.Booking{
			CustomerName:   input.CustomerName,
			Email:          input.Email,
			Phone:          input.Phone,
			CarID:          input.CarID,
			StartDate:      input.StartDate,
			EndDate:        input.EndDate,
			Type:           models.BookingType(input.Type),
			AgeConfirmed:   input.AgeConfirmed,
			TermsConfirmed: input.TermsConfirmed,
			RecordID:       id,
		})

		if hub != nil {
			hub.SendSubmissionEvent(services.SubmissionEvent{
				Kind:         string(models.BookingTypeRental),
				CustomerName: input.CustomerName,
				Email:        input.Email,
				Detail:       input.StartDate + " to " + input.EndDate,
				ReceivedAt:   time.Now(),
			})
		}

		c.JSON(200, gin.H{"success": true, "id": id})
	}
}

// archiveBooking writes the local copy. The record store row already exists
// at this point, so a failure here only costs the admin listing, never the
// customer's booking.
func archiveBooking(db *gorm.DB, booking models.Booking) {
	if db == nil {
		return
	}
	if err := db.Create(&booking).Error; err != nil {
		log.Printf("Failed to archive booking %s: %v", booking.RecordID, err)
	}
}
