package models

import "github.com/shopspring/decimal"

type Service struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	AppointmentID string `gorm:"size:64;index" json:"appointment_id"`

	Name          string          `gorm:"size:100" json:"name"`
	Price         decimal.Decimal `gorm:"type:numeric" json:"price"`
	LoyaltyPoints int             `json:"loyalty_points"`
}
