package handlers

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/saverentacar/saverent-backend/internal/models"
	"github.com/saverentacar/saverent-backend/internal/services"
	"github.com/saverentacar/saverent-backend/pkg/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AdminLogin authenticates the site operator against the env-configured
// credential. There is no user table; this site has exactly one operator.
func AdminLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			Email    string `json:"email" binding:"required,email"`
			Password string `json:"password" binding:"required"`
		}

		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		adminEmail := os.Getenv("ADMIN_EMAIL")
		passwordHash := os.Getenv("ADMIN_PASSWORD_HASH")
		if adminEmail == "" || passwordHash == "" {
			c.JSON(500, gin.H{"error": "Admin access not configured."})
			return
		}

		if input.Email != adminEmail ||
			bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(input.Password)) != nil {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := utils.GenerateAdminToken(adminEmail)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(200, gin.H{"token": token})
	}
}

// GetBookings lists archived bookings, newest first. Accepts ?type=rental
// or ?type=transfer.
func GetBookings(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(500, gin.H{"error": "Archive not configured."})
			return
		}

		query := db.Order("created_at DESC")
		if t := c.Query("type"); t != "" {
			query = query.Where("type = ?", t)
		}

		var bookings []models.Booking
		if err := query.Find(&bookings).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch bookings"})
			return
		}

		c.JSON(200, bookings)
	}
}

// GetInquiries lists archived contact inquiries, newest first.
func GetInquiries(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(500, gin.H{"error": "Archive not configured."})
			return
		}

		var inquiries []models.Inquiry
		if err := db.Order("created_at DESC").Find(&inquiries).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch inquiries"})
			return
		}

		c.JSON(200, inquiries)
	}
}

// UploadImage stores a fleet or destination photo and returns its public
// URL for the operator to paste into the record store's Image column.
func UploadImage() gin.HandlerFunc {
	return func(c *gin.Context) {
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(400, gin.H{"error": "Image file is required"})
			return
		}

		folder := c.PostForm("folder")
		if folder != "destinations" {
			folder = "fleet"
		}

		url, err := services.UploadImage(file, folder)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to upload image"})
			return
		}

		// A new photo usually means the inventory changed too.
		services.InvalidateFleet(c.Request.Context())

		c.JSON(200, gin.H{"url": url})
	}
}
