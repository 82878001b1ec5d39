package models

import (
	"time"
)

type Order struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	CustomerID       *uint      `gorm:"index" json:"customer_id,omitempty"`
	Customer         *Customer  `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	PaymentStatus    string     `gorm:"type:varchar(20);not null;default:'none'" json:"payment_status"`
	PaymentReference string     `gorm:"type:varchar(64)" json:"payment_reference,omitempty"`
	LineItems        []LineItem `gorm:"foreignKey:OrderID" json:"line_items"`
	CreatedAt        time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"not null" json:"updated_at"`
}
