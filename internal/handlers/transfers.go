package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saverentacar/saverent-backend/internal/airtable"
	"github.com/saverentacar/saverent-backend/internal/models"
	"github.com/saverentacar/saverent-backend/internal/services"
	"gorm.io/gorm"
)

// RequestTransfer handles a tour-transfer request. Transfers have no car
// link and no rental dates; today's date stands in as StartDate so the
// record store row sorts with the bookings.
func RequestTransfer(db *gorm.DB, store BookingStore, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			FirstName      string `json:"firstName" binding:"required"`
			LastName       string `json:"lastName" binding:"required"`
			Email          string `json:"email" binding:"required,email"`
			Phone          string `json:"phone" binding:"required"`
			PickupLocation string `json:"pickupLocation"`
			TransferDesc   string `json:"transferDesc" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		customerName := input.FirstName + " " + input.LastName
		desc := input.TransferDesc
		if input.PickupLocation != "" {
			desc = "Pickup: " + input.PickupLocation + "\n" + desc
		}

		fields := airtable.BookingFields{
			CustomerName:   customerName,
			Email:          input.Email,
			Phone:          input.Phone,
			Car:            []string{},
			StartDate:      time.Now().Format("2006-01-02"),
			Type:           string(models.BookingTypeTransfer),
			AgeConfirmed:   false,
			TermsConfirmed: true,
			TransferDesc:   desc,
		}

		id, err := store.CreateBooking(c.Request.Context(), fields)
		if err != nil {
			c.JSON(500, gin.H{"error": err.Error()})
			return
		}

		archiveBooking(db, models.Booking{
			CustomerName:   customerName,
			Email:          input.Email,
			Phone:          input.Phone,
			StartDate:      fields.StartDate,
			Type:           models.BookingTypeTransfer,
			TermsConfirmed: true,
			TransferDesc:   desc,
			RecordID:       id,
		})

		if hub != nil {
			hub.SendSubmissionEvent(services.SubmissionEvent{
				Kind:         string(models.BookingTypeTransfer),
				CustomerName: customerName,
				Email:        input.Email,
				Detail:       desc,
				ReceivedAt:   time.Now(),
			})
		}

		c.JSON(200, gin.H{"success": true, "id": id})
	}
}
