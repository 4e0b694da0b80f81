package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ==================== UUID ====================

func GenerateUUIDString() string {
	return uuid.New().String()
}

// ==================== HOLD / RESERVATION IDS ====================

// GenerateHoldID creates a unique hold ID.
// Format: HOLD-YYYYMMDD-HHMMSS-RANDOM
func GenerateHoldID() string {
	return generatePrefixedID("HOLD")
}

// GenerateReservationID creates a unique reservation ID.
// Format: RSV-YYYYMMDD-HHMMSS-RANDOM
func GenerateReservationID() string {
	return generatePrefixedID("RSV")
}

func generatePrefixedID(prefix string) string {
	now := time.Now()

	datePart := now.Format("20060102")
	timePart := now.Format("150405")
	randomPart := strings.Split(uuid.New().String(), "-")[0]

	return fmt.Sprintf("%s-%s-%s-%s", prefix, datePart, timePart, randomPart)
}
