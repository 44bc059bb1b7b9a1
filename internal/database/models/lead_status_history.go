package models

import "time"

// LeadStatusHistory is an append-only record of one lead status transition
type LeadStatusHistory struct {
	ID          uint       `json:"id" gorm:"primaryKey;autoIncrement"`
	LeadID      uint       `json:"lead_id" gorm:"not null;index"`
	OldStatus   LeadStatus `json:"old_status" gorm:"type:varchar(32);not null"`
	NewStatus   LeadStatus `json:"new_status" gorm:"type:varchar(32);not null"`
	ChangedByID *uint      `json:"changed_by_id" gorm:"index"`
	Reason      string     `json:"reason" gorm:"type:text"`
	ChangedAt   time.Time  `json:"changed_at" gorm:"not null"`

	// Relationships
	Lead      Lead  `json:"-" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	ChangedBy *User `json:"-" gorm:"foreignKey:ChangedByID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for LeadStatusHistory
func (LeadStatusHistory) TableName() string {
	return "lead_status_history"
}
