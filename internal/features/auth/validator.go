package auth

import (
	"errors"
	"strings"

	"github.com/TheYuvrajMishra/upwork-standard/internal/pkg/validator"
)

func ValidateRegister(req *RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return errors.New("Please fill all fields.")
	}
	if !validator.IsValidEmail(req.Email) {
		return errors.New("Please enter a valid email address")
	}
	return nil
}

func ValidateLogin(req *LoginRequest) error {
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return errors.New("Please provide email and password.")
	}
	return nil
}
