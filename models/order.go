package models

// Order represents a job posted by a customer and carried out by an executor.
// CustomerID and ExecutorID reference users but are not enforced as foreign keys.
type Order struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"size:80" json:"name"`
	Description string  `gorm:"size:300" json:"description"`
	StartDate   Date    `json:"start_date"`
	EndDate     Date    `json:"end_date"`
	Address     *string `gorm:"size:120" json:"address"` // nullable
	Price       int     `json:"price"`
	CustomerID  uint    `gorm:"index" json:"customer_id"`
	ExecutorID  uint    `gorm:"index" json:"executor_id"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
