package handlers

import (
	"log"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saverentacar/saverent-backend/internal/models"
	"github.com/saverentacar/saverent-backend/internal/services"
	"github.com/saverentacar/saverent-backend/pkg/utils"
	"gorm.io/gorm"
)

// ContactSender relays a validated submission to the site operator.
type ContactSender interface {
	Configured() bool
	SendContactMessage(msg utils.ContactMessage) error
}

// subjectLabels maps the contact form's subject codes to the labels used in
// the relayed email. Unknown codes pass through unchanged.
var subjectLabels = map[string]string{
	"booking":      "Car Booking Inquiry",
	"destinations": "Destination Information",
	"pricing":      "Pricing Questions",
	"support":      "Customer Support",
	"feedback":     "Feedback",
	"other":        "Other",
}

// SubmitContact validates a contact-form submission and relays it by email.
// A filled honeypot gets a success response with no send, so bots learn
// nothing.
func SubmitContact(db *gorm.DB, mailer ContactSender, hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Phone   string `json:"phone"`
			Subject string `json:"subject"`
			Message string `json:"message"`
			HP      string `json:"hp"`
		}
		// A malformed body leaves everything empty and fails validation below.
		_ = c.ShouldBindJSON(&input)

		if input.HP != "" {
			c.JSON(200, gin.H{"ok": true})
			return
		}

		if strings.TrimSpace(input.Name) == "" ||
			!utils.IsEmail(input.Email) ||
			strings.TrimSpace(input.Subject) == "" ||
			strings.TrimSpace(input.Message) == "" {
			c.JSON(400, gin.H{"error": "Invalid input."})
			return
		}

		label := subjectLabels[input.Subject]
		if label == "" {
			label = input.Subject
		}
		if label == "" {
			label = "Contact form"
		}

		if !mailer.Configured() {
			c.JSON(500, gin.H{"error": "Email not configured."})
			return
		}

		err := mailer.SendContactMessage(utils.ContactMessage{
			Name:         input.Name,
			Email:        input.Email,
			Phone:        input.Phone,
			SubjectLabel: label,
			Body:         input.Message,
		})
		if err != nil {
			log.Printf("SMTP error: %v", err)
			c.JSON(500, gin.H{"error": "Failed to send."})
			return
		}

		if db != nil {
			inquiry := models.Inquiry{
				Name:         input.Name,
				Email:        input.Email,
				Phone:        input.Phone,
				Subject:      input.Subject,
				SubjectLabel: label,
				Message:      input.Message,
			}
			if err := db.Create(&inquiry).Error; err != nil {
				log.Printf("Failed to archive inquiry from %s: %v", input.Email, err)
			}
		}

		if hub != nil {
			hub.SendSubmissionEvent(services.SubmissionEvent{
				Kind:         "inquiry",
				CustomerName: input.Name,
				Email:        input.Email,
				Detail:       label,
				ReceivedAt:   time.Now(),
			})
		}

		c.JSON(200, gin.H{"ok": true})
	}
}

// ContactHealth reports whether the mail relay is configured, without
// exposing any of the values.
func ContactHealth(mailer ContactSender) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "hasEnv": mailer.Configured()})
	}
}
