package utils

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

func GenerateUUID() uuid.UUID {
	return uuid.New()
}

func GenerateSessionID() string {
	return uuid.New().String()
}

// GenerateBookingRef creates a booking reference for a seat code
// Format: SEAT-<seat>-<first 8 hex of a uuid>
func GenerateBookingRef(seat string, id uuid.UUID) string {
	suffix := strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
	return fmt.Sprintf("SEAT-%s-%s", seat, suffix)
}
