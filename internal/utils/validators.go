// internal/utils/validators.go
// Validation utility functions

package utils

import (
	"fmt"
	"net/mail"
	"regexp"
)

// ValidateEmail validates an email address
func ValidateEmail(email string) error {
	_, err := mail.ParseAddress(email)
	if err != nil {
		return fmt.Errorf("invalid email format")
	}
	return nil
}

// ValidatePassword validates password strength
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	if !regexp.MustCompile(`[A-Z]`).MatchString(password) {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}

	if !regexp.MustCompile(`[a-z]`).MatchString(password) {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}

	if !regexp.MustCompile(`[0-9]`).MatchString(password) {
		return fmt.Errorf("password must contain at least one number")
	}

	return nil
}

// ValidateSessionName validates a session's display name
func ValidateSessionName(name string) error {
	if len(name) < 3 {
		return fmt.Errorf("session name must be at least 3 characters long")
	}
	if len(name) > 255 {
		return fmt.Errorf("session name must not exceed 255 characters")
	}
	return nil
}

// ValidatePlayerName validates a roster entry's name
func ValidatePlayerName(name string) error {
	if len(name) < 1 {
		return fmt.Errorf("player name must not be empty")
	}
	if len(name) > 100 {
		return fmt.Errorf("player name must not exceed 100 characters")
	}
	return nil
}
