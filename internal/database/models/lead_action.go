package models

import "time"

// LeadAction is an activity an agent logged against a lead
type LeadAction struct {
	ID           uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	LeadID       uint       `json:"lead_id" gorm:"not null;index"`
	SalesAgentID *uint      `json:"sales_agent_id" gorm:"index"`
	ActionType   ActionType `json:"action_type" gorm:"type:varchar(32);not null"`
	Description  string     `json:"description" gorm:"type:text"`
	ActionDate   time.Time  `json:"action_date" gorm:"not null;index"`
	CreatedAt    time.Time  `json:"created_at" gorm:"not null"`

	// Relationships
	Lead       Lead        `json:"-" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	SalesAgent *SalesAgent `json:"-" gorm:"foreignKey:SalesAgentID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for LeadAction
func (LeadAction) TableName() string {
	return "lead_actions"
}
