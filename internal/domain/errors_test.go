package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoSubscribersIsNotFoundClass(t *testing.T) {
	// Callers distinguishing "nobody listens" from real failures match
	// on the NotFound sentinel; the specific sentinel must stay inside
	// that class.
	assert.ErrorIs(t, ErrNoSubscribers, ErrNotFound)
}
