package models

import (
	"gorm.io/gorm"
)

type BookingType string

const (
	BookingTypeRental   BookingType = "rental"
	BookingTypeTransfer BookingType = "transfer"
)

// Booking is the local archive copy of a submission. The record store keeps
// the canonical row; this copy backs the admin listing and survives the
// operator reorganizing the external base.
type Booking struct {
	gorm.Model
	CustomerName   string      `json:"customerName" gorm:"not null"`
	Email          string      `json:"email" gorm:"not null"`
	Phone          string      `json:"phone"`
	CarID          string      `json:"carId"`
	StartDate      string      `json:"startDate"`
	EndDate        string      `json:"endDate"`
	Type           BookingType `json:"type" gorm:"not null;default:'rental'"`
	AgeConfirmed   bool        `json:"ageConfirmed"`
	TermsConfirmed bool        `json:"termsConfirmed"`
	TransferDesc   string      `json:"transferDesc"`
	RecordID       string      `json:"recordId"`
}
