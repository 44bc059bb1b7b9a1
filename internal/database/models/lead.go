package models

// Lead is a prospective customer tracked through the sales pipeline
type Lead struct {
	BaseModel
	FirstName    string     `json:"first_name" gorm:"not null;size:100"`
	LastName     string     `json:"last_name" gorm:"not null;size:100"`
	Email        string     `json:"email" gorm:"size:255;index"`
	Phone        string     `json:"phone" gorm:"size:50"`
	Company      string     `json:"company" gorm:"size:200"`
	JobTitle     string     `json:"job_title" gorm:"size:100"`
	Source       string     `json:"source" gorm:"size:100;index"`
	Status       LeadStatus `json:"status" gorm:"type:varchar(32);not null;default:'new';index"`
	Value        float64    `json:"value" gorm:"not null;default:0"`
	Budget       float64    `json:"budget" gorm:"not null;default:0"`
	Notes        string     `json:"notes" gorm:"type:text"`
	OwnerID      *uint      `json:"owner_id" gorm:"index"`
	SalesAgentID *uint      `json:"sales_agent_id" gorm:"index"`

	// Relationships
	Owner      *User       `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:SET NULL"`
	SalesAgent *SalesAgent `json:"-" gorm:"foreignKey:SalesAgentID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Lead
func (Lead) TableName() string {
	return "leads"
}
