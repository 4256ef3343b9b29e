// Package models holds the server's storage-independent domain types.
package models

import "time"

// User is a registered account. Password holds a bcrypt hash once persisted
// and is never serialized to JSON.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	AadhaarNumber string    `json:"aadhaar_number"`
	MCPCardNumber string    `json:"mcp_card_number"`
	MobileNumber  string    `json:"mobile_number"`
	Email         string    `json:"email"`
	Password      string    `json:"-"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
