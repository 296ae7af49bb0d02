package models

import "gorm.io/gorm"

// UserRole distinguishes regular customers from catalog administrators.
type UserRole string

const (
	RoleCustomer UserRole = "CUSTOMER"
	RoleAdmin    UserRole = "ADMIN"
)

// Address is embedded into the user record; it is not an aggregate of its own.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Zipcode string `json:"zipcode"`
}

// User represents a registered user of the shop.
type User struct {
	ID         string   `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	FirstName  string   `json:"first_name" validate:"required,max=100"`
	LastName   string   `json:"last_name" validate:"omitempty,max=100"`
	Email      string   `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Phone      string   `json:"phone" validate:"omitempty,max=30"`
	Role       UserRole `json:"role" gorm:"type:varchar(16);default:CUSTOMER"`
	Address    Address  `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	Password   string   `json:"-" gorm:"type:varchar(255)"` // bcrypt hash
	gorm.Model `json:"-"`
}
