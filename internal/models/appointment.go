package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	// Plain FK column, no constraint: batches may arrive before their
	// parent table and cascade delete removes children first.
	ClientID string `gorm:"size:64;index" json:"client_id"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}
