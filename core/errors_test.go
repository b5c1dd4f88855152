package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "sentinel", err: ErrNotFound, expected: true},
		{name: "wrapped sentinel", err: fmt.Errorf("failed to fetch starter message: %w", ErrNotFound), expected: true},
		{name: "unwrapped text mentioning not found", err: errors.New("webhook target Not Found"), expected: false},
		{name: "forbidden", err: ErrForbidden, expected: false},
		{name: "other", err: errors.New("connection reset"), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsNotFoundError(tc.err))
		})
	}
}

func TestIsForbiddenError(t *testing.T) {
	assert.False(t, IsForbiddenError(nil))
	assert.True(t, IsForbiddenError(ErrForbidden))
	assert.True(t, IsForbiddenError(fmt.Errorf("failed to pin message: %w", ErrForbidden)))
	assert.False(t, IsForbiddenError(ErrNotFound))
	assert.False(t, IsForbiddenError(errors.New("forbidden but not the sentinel")))
}
