package models

// User represents a marketplace participant (customer or executor)
type User struct {
	ID        uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName string `gorm:"size:80" json:"first_name"`
	LastName  string `gorm:"size:80" json:"last_name"`
	Age       int    `json:"age"`
	Email     string `gorm:"size:100" json:"email"`
	Role      string `gorm:"size:80" json:"role"`
	Phone     string `gorm:"size:80" json:"phone"`
}

// TableName specifies the table name for the User model
func (User) TableName() string {
	return "users"
}
