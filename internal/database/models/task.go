package models

import "time"

// Task is a unit of work assigned to a user, optionally about a lead
type Task struct {
	BaseModel
	Title         string       `json:"title" gorm:"not null;size:200"`
	Description   string       `json:"description" gorm:"type:text"`
	DueDate       *time.Time   `json:"due_date" gorm:"index"`
	Status        TaskStatus   `json:"status" gorm:"type:varchar(32);not null;default:'pending';index"`
	Priority      TaskPriority `json:"priority" gorm:"type:varchar(16);not null;default:'medium';index"`
	AssignedToID  *uint        `json:"assigned_to_id" gorm:"index"`
	RelatedLeadID *uint        `json:"related_lead_id" gorm:"index"`

	// Relationships
	AssignedTo  *User `json:"-" gorm:"foreignKey:AssignedToID;constraint:OnDelete:SET NULL"`
	RelatedLead *Lead `json:"-" gorm:"foreignKey:RelatedLeadID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}
