package models

// HeadOfSales is the supervisor profile of a user
type HeadOfSales struct {
	BaseModel
	UserID     uint   `json:"user_id" gorm:"not null;uniqueIndex"`
	Department string `json:"department" gorm:"size:100"`

	// Relationships
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for HeadOfSales
func (HeadOfSales) TableName() string {
	return "head_of_sales"
}
