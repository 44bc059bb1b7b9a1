package models

// User represents an account of the CRM. Role is fixed at creation.
type User struct {
	BaseModel
	Email        string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Username     string   `json:"username" gorm:"uniqueIndex;not null;size:100"`
	FullName     string   `json:"full_name" gorm:"size:200"`
	PasswordHash string   `json:"-" gorm:"not null;size:100"`
	Role         UserRole `json:"role" gorm:"type:varchar(32);not null;default:'customer';index"`
	IsActive     bool     `json:"is_active" gorm:"not null"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
