package models

import "time"

// SalesTeamAssignment links a head of sales to an agent they supervise.
// The (head, agent) pair is unique.
type SalesTeamAssignment struct {
	ID            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	HeadOfSalesID uint      `json:"head_of_sales_id" gorm:"not null;uniqueIndex:idx_team_head_agent"`
	SalesAgentID  uint      `json:"sales_agent_id" gorm:"not null;uniqueIndex:idx_team_head_agent;index"`
	AssignedDate  time.Time `json:"assigned_date" gorm:"not null"`
	IsActive      bool      `json:"is_active" gorm:"not null"`
	Notes         string    `json:"notes" gorm:"type:text"`

	// Relationships
	HeadOfSales HeadOfSales `json:"-" gorm:"foreignKey:HeadOfSalesID;constraint:OnDelete:CASCADE"`
	SalesAgent  SalesAgent  `json:"-" gorm:"foreignKey:SalesAgentID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SalesTeamAssignment
func (SalesTeamAssignment) TableName() string {
	return "sales_team_assignments"
}
