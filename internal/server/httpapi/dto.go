package httpapi

import "github.com/dmitrijs2005/mcpcare/internal/server/services"

// Response messages. Clients match on these strings.
const (
	msgInvalidBody      = "Invalid request body"
	msgPasswordMismatch = "Passwords do not match"
	msgMissingFields    = "All fields are required"
	msgSignupOK         = "User signed up successfully"
	msgSignupFailed     = "Error signing up. Please try again."
	msgInvalidCreds     = "Invalid credentials"
	msgLoginOK          = "Login successful"
	msgLoginFailed      = "Error logging in. Please try again."
	msgAccessDenied     = "Access denied"
	msgInvalidToken     = "Invalid token"
)

type signupRequest struct {
	Name            string `json:"name"`
	AadhaarNumber   string `json:"aadhaar_number"`
	MCPCardNumber   string `json:"mcp_card_number"`
	MobileNumber    string `json:"mobile_number"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (r signupRequest) toInput() services.SignupInput {
	return services.SignupInput{
		Name:            r.Name,
		AadhaarNumber:   r.AadhaarNumber,
		MCPCardNumber:   r.MCPCardNumber,
		MobileNumber:    r.MobileNumber,
		Email:           r.Email,
		Password:        r.Password,
		ConfirmPassword: r.ConfirmPassword,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type healthResponse struct {
	Status string `json:"status"`
}
