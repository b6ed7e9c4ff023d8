package domain

import (
	"errors"

	"breakfast4u-web/entities"
)

var (
	MessageSuccessRegister = "registered successfully"
	MessageSuccessLogin    = "signed in successfully"
	MessageSuccessLogout   = "signed out successfully"
	MessageSuccessGetUser  = "user retrieved successfully"
	MessageSuccessContact  = "message sent successfully"

	MessageFailedRegister = "Registration failed"
	MessageFailedLogin    = "Login failed"
	MessageFailedGetUser  = "Failed to get user data"
	MessageFailedContact  = "Failed to submit contact form"

	ErrOwnerAccountRequired = errors.New("access denied, owner account required")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
		Role     string `json:"role" validate:"required,oneof=customer owner"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	// AuthResponse is what the remote API returns on login/registration.
	AuthResponse struct {
		Token string        `json:"token"`
		User  entities.User `json:"user"`
	}

	ContactRequest struct {
		Name    string `json:"name" validate:"required"`
		Email   string `json:"email" validate:"required,email"`
		Subject string `json:"subject" validate:"required"`
		Message string `json:"message" validate:"required"`
	}
)
