package models

import (
	"gorm.io/gorm"
)

// Inquiry archives a contact-form submission after the email relay accepted it.
type Inquiry struct {
	gorm.Model
	Name         string `json:"name" gorm:"not null"`
	Email        string `json:"email" gorm:"not null"`
	Phone        string `json:"phone"`
	Subject      string `json:"subject"`
	SubjectLabel string `json:"subjectLabel"`
	Message      string `json:"message" gorm:"type:text"`
}
