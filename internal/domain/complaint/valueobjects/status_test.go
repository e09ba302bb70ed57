package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	for _, valid := range []string{"Filed", "Under Review", "In Progress", "Resolved", "Rejected"} {
		status, err := NewStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, status.String())
	}

	for _, invalid := range []string{"", "filed", "Closed", "PENDING"} {
		_, err := NewStatus(invalid)
		assert.Error(t, err, invalid)
	}
}

func TestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusFiled, StatusUnderReview, true},
		{StatusFiled, StatusInProgress, false},
		{StatusFiled, StatusResolved, false},
		{StatusUnderReview, StatusInProgress, true},
		{StatusUnderReview, StatusResolved, false},
		{StatusInProgress, StatusResolved, true},
		{StatusInProgress, StatusRejected, true},
		{StatusInProgress, StatusFiled, false},
		{StatusResolved, StatusFiled, false},
		{StatusRejected, StatusUnderReview, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestStatus_Predicates(t *testing.T) {
	assert.True(t, StatusFiled.IsFiled())
	assert.True(t, StatusUnderReview.IsUnderReview())
	assert.True(t, StatusInProgress.IsInProgress())
	assert.True(t, StatusResolved.IsResolved())
	assert.True(t, StatusRejected.IsRejected())

	assert.True(t, StatusResolved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.False(t, StatusInProgress.IsTerminal())

	assert.True(t, StatusFiled.IsPending())
	assert.True(t, StatusUnderReview.IsPending())
	assert.True(t, StatusInProgress.IsPending())
	assert.False(t, StatusResolved.IsPending())
	assert.False(t, StatusRejected.IsPending())
}
