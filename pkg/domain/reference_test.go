package domain_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vuelasur/booking/pkg/domain"
)

func TestNewReference(t *testing.T) {
	now := time.Date(2025, 1, 14, 10, 30, 0, 0, time.UTC)

	ref := domain.NewReference("VS", now)
	assert.Regexp(t, regexp.MustCompile(`^VS-20250114-[0-9A-F]{8}$`), ref)

	other := domain.NewReference("VS", now)
	assert.NotEqual(t, ref, other)

	booking := domain.NewReference("BK", now)
	assert.Regexp(t, regexp.MustCompile(`^BK-20250114-[0-9A-F]{8}$`), booking)
}

func TestNewSessionID(t *testing.T) {
	id := domain.NewSessionID()
	assert.Regexp(t, regexp.MustCompile(`^[0-9a-f]{32}$`), id)
	assert.NotEqual(t, id, domain.NewSessionID())
}
