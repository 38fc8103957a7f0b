package validator

import (
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	objectIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)
	datetimeRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d{3})?Z?$`)
)

// IsValidEmail checks if the email format is valid
func IsValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsValidObjectID checks if the string is a well-formed Mongo ObjectID hex
func IsValidObjectID(id string) bool {
	return objectIDRegex.MatchString(id)
}

// IsValidDateTime checks if the datetime string is in ISO format
func IsValidDateTime(datetime string) bool {
	return datetimeRegex.MatchString(datetime)
}
