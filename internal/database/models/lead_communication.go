package models

import "time"

// LeadCommunication records one message or conversation with a lead
type LeadCommunication struct {
	ID             uint                   `json:"id" gorm:"primaryKey;autoIncrement"`
	LeadID         uint                   `json:"lead_id" gorm:"not null;index"`
	SalesAgentID   *uint                  `json:"sales_agent_id" gorm:"index"`
	Method         CommunicationMethod    `json:"method" gorm:"type:varchar(32);not null"`
	Direction      CommunicationDirection `json:"direction" gorm:"type:varchar(16);not null;default:'outbound'"`
	Summary        string                 `json:"summary" gorm:"type:text"`
	CommunicatedAt time.Time              `json:"communicated_at" gorm:"not null;index"`
	CreatedAt      time.Time              `json:"created_at" gorm:"not null"`

	// Relationships
	Lead       Lead        `json:"-" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	SalesAgent *SalesAgent `json:"-" gorm:"foreignKey:SalesAgentID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for LeadCommunication
func (LeadCommunication) TableName() string {
	return "lead_communications"
}
