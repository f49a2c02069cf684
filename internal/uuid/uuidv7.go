package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New generates a new UUIDv7 string. UUIDv7 is time-ordered and suitable
// for use as a database primary key. Falls back to UUIDv4 in the unlikely
// event that the random source is unavailable.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New().String()
	}
	return id.String()
}

// Parse validates and parses a UUID string
func Parse(s string) (string, error) {
	parsed, err := googleuuid.Parse(s)
	if err != nil {
		return "", err
	}
	return parsed.String(), nil
}

// IsValid checks if a string is a valid UUID
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
