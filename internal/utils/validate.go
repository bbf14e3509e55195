package utils

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format the Spark API uses.
const DateLayout = "2006-01-02"

// IsValidUUID checks if a string is a valid UUID.
func IsValidUUID(uuidStr string) bool {
	_, err := uuid.Parse(uuidStr)
	return err == nil
}

// IsValidDate checks if a string is a calendar date in YYYY-MM-DD form.
func IsValidDate(dateStr string) bool {
	_, err := time.Parse(DateLayout, dateStr)
	return err == nil
}
