package models

import (
	"time"

	"gorm.io/gorm"
)

// OrderStatus is the lifecycle state of an order. Orders are created
// directly in CONFIRMED state and are immutable afterwards.
type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// OrderItem is a single line of an order. It is exclusively owned by its
// order and removed together with it. Price is the cart snapshot price.
type OrderItem struct {
	ID         string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID    string  `json:"order_id" gorm:"type:varchar(36);index"`
	ProductID  string  `json:"product_id" gorm:"type:varchar(36)"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
	gorm.Model `json:"-"`
}

// Order is a confirmed purchase built from a cart snapshot.
type Order struct {
	ID          string         `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string         `json:"user_id" gorm:"type:varchar(36);index"`
	Status      OrderStatus    `json:"status" gorm:"type:varchar(16)"`
	TotalAmount float64        `json:"total_amount"`
	Items       []OrderItem    `json:"items" gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
