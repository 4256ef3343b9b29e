// Package models holds the client-side view of API payloads.
package models

import "time"

// SignupForm is what the user fills in to create an account.
type SignupForm struct {
	Name            string `json:"name"`
	AadhaarNumber   string `json:"aadhaar_number"`
	MCPCardNumber   string `json:"mcp_card_number"`
	MobileNumber    string `json:"mobile_number"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// Profile is the account as returned by GET /profile.
type Profile struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	AadhaarNumber string    `json:"aadhaar_number"`
	MCPCardNumber string    `json:"mcp_card_number"`
	MobileNumber  string    `json:"mobile_number"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
