package models

// Offer is an executor's bid on an order
type Offer struct {
	ID         uint `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    uint `gorm:"index" json:"order_id"`
	ExecutorID uint `gorm:"index" json:"executor_id"`
}

// TableName specifies the table name for the Offer model
func (Offer) TableName() string {
	return "offers"
}
