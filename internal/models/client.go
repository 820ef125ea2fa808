package models

// Client identifiers come from the upstream system (CSV exports or API
// callers); they are never generated here.
type Client struct {
	ID string `gorm:"primaryKey;size:64" json:"id"`

	FirstName string `gorm:"size:100" json:"first_name"`
	LastName  string `gorm:"size:100" json:"last_name"`
	Email     string `gorm:"size:100" json:"email"`
	Phone     string `gorm:"size:20" json:"phone"`
	Gender    string `gorm:"size:1" json:"gender"`
	Banned    bool   `json:"banned"`
}
