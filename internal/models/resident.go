package models

import (
	"time"
)

// Occupancy status values for a household unit
const (
	StatusMenetap       = "Menetap"
	StatusPenyewa       = "Penyewa"
	StatusKunjungan     = "Kunjungan"
	StatusDitempati2026 = "Ditempati 2026"
)

// OccupancyStatuses lists the closed enumeration of occupancy status values
var OccupancyStatuses = []string{
	StatusMenetap,
	StatusPenyewa,
	StatusKunjungan,
	StatusDitempati2026,
}

// IsKnownOccupancyStatus reports whether s is a member of the closed enumeration
func IsKnownOccupancyStatus(s string) bool {
	for _, known := range OccupancyStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Resident represents the residents table
type Resident struct {
	ID              uint      `json:"id" gorm:"primarykey"`
	FullName        string    `json:"full_name" gorm:"column:full_name;not null"`
	BlockNumber     string    `json:"block_number" gorm:"column:block_number;not null"`
	Whatsapp        string    `json:"whatsapp" gorm:"column:whatsapp"`
	OccupancyStatus string    `json:"occupancy_status" gorm:"column:occupancy_status;not null"`
	MonthlyDuesPaid bool      `json:"monthly_dues_paid" gorm:"column:monthly_dues_paid"`
	EventDuesAmount int64     `json:"event_dues_amount" gorm:"column:event_dues_amount;default:0"`
	Notes           string    `json:"notes" gorm:"column:notes"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName sets the insert table name for Resident
func (Resident) TableName() string {
	return "residents"
}
