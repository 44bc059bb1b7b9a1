package models

import "time"

// HeadLeadOversight marks a lead as supervised by a head of sales
type HeadLeadOversight struct {
	ID            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	LeadID        uint      `json:"lead_id" gorm:"not null;uniqueIndex:idx_oversight_lead_head"`
	HeadOfSalesID uint      `json:"head_of_sales_id" gorm:"not null;uniqueIndex:idx_oversight_lead_head;index"`
	Notes         string    `json:"notes" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at" gorm:"not null"`

	// Relationships
	Lead        Lead        `json:"-" gorm:"foreignKey:LeadID;constraint:OnDelete:CASCADE"`
	HeadOfSales HeadOfSales `json:"-" gorm:"foreignKey:HeadOfSalesID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for HeadLeadOversight
func (HeadLeadOversight) TableName() string {
	return "head_lead_oversights"
}
