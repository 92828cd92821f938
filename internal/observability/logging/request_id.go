package logging

import "github.com/google/uuid"

// ValidateAndExtractRequestID returns id in canonical form when it is a
// UUID, and a fresh UUID otherwise.
func ValidateAndExtractRequestID(id string) string {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.NewString()
	}
	return parsed.String()
}
