package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewReference builds a unique business reference of the form
// <prefix>-<YYYYMMDD>-<8 uppercase hex chars>, e.g. VS-20250114-3F2A9C01.
// References are generated once and never mutated.
func NewReference(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), randomSuffix())
}

// NewSessionID returns a fresh 32-character hexadecimal session identifier.
func NewSessionID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])
}

func randomSuffix() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:4]))
}
