package models

import "time"

// LeadFollowup is a scheduled or completed contact event for a lead
type LeadFollowup struct {
	ID           uint           `json:"id" gorm:"primaryKey;autoIncrement"`
	LeadID       uint           `json:"lead_id" gorm:"not null;index"`
	SalesAgentID *uint          `json:"sales_agent_id" gorm:"index"`
	FollowupDate time.Time      `json:"followup_date" gorm:"not null;index"`
	FollowupType string         `json:"followup_type" gorm:"size:50"`
	Notes        string         `json:"notes" gorm:"type:text"`
	Outcome      string         `json:"outcome" gorm:"type:text"`
	Status       FollowupStatus `json:"status" gorm:"type:varchar(32);not null;default:'scheduled'"`
	Completed    bool           `json:"completed" gorm:"not null;default:false"`
	CreatedAt    time.Time      `json:"created_at" gorm:"not null"`

	// Relationships
	Lead       Lead        `json:"-" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	SalesAgent *SalesAgent `json:"-" gorm:"foreignKey:SalesAgentID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for LeadFollowup
func (LeadFollowup) TableName() string {
	return "lead_followups"
}
