package models

import "time"

// LeadAssignment attaches an agent to a lead. The (lead, agent) pair is unique.
type LeadAssignment struct {
	ID             uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	LeadID         uint           `json:"lead_id" gorm:"not null;uniqueIndex:idx_lead_assignment_pair"`
	SalesAgentID   uint           `json:"sales_agent_id" gorm:"not null;uniqueIndex:idx_lead_assignment_pair;index"`
	AssignedByID   *uint          `json:"assigned_by_id" gorm:"index"`
	AssignmentType AssignmentType `json:"assignment_type" gorm:"type:varchar(16);not null;default:'primary'"`
	IsActive       bool           `json:"is_active" gorm:"not null"`
	AssignedAt     time.Time      `json:"assigned_at" gorm:"not null"`

	// Relationships
	Lead       Lead         `json:"-" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	SalesAgent SalesAgent   `json:"-" gorm:"foreignKey:SalesAgentID;constraint:OnDelete:CASCADE"`
	AssignedBy *HeadOfSales `json:"-" gorm:"foreignKey:AssignedByID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for LeadAssignment
func (LeadAssignment) TableName() string {
	return "lead_assignments"
}
