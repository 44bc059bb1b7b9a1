package models

import "time"

// SalesAgent is the sales profile of a user. A user holds at most one.
type SalesAgent struct {
	BaseModel
	UserID         uint      `json:"user_id" gorm:"not null;uniqueIndex"`
	EmployeeID     *string   `json:"employee_id" gorm:"uniqueIndex;size:50"`
	Department     string    `json:"department" gorm:"size:100;index"`
	HireDate       time.Time `json:"hire_date" gorm:"not null"`
	Quota          float64   `json:"quota" gorm:"not null;default:0"`
	CommissionRate float64   `json:"commission_rate" gorm:"not null;default:0"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SalesAgent
func (SalesAgent) TableName() string {
	return "sales_agents"
}
