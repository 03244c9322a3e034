package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{name: "pending_to_processing", from: StatusPending, to: StatusProcessing, want: true},
		{name: "pending_to_cancelled", from: StatusPending, to: StatusCancelled, want: true},
		{name: "preparing_to_ready", from: StatusPreparing, to: StatusReady, want: true},
		{name: "admin_can_jump_backwards", from: StatusReady, to: StatusPending, want: true},
		{name: "no_exit_from_completed", from: StatusCompleted, to: StatusPending, want: false},
		{name: "no_exit_from_delivered", from: StatusDelivered, to: StatusCancelled, want: false},
		{name: "no_exit_from_cancelled", from: StatusCancelled, to: StatusPending, want: false},
		{name: "unknown_target_rejected", from: StatusPending, to: "shipped", want: false},
		{name: "self_transition_rejected", from: StatusPending, to: StatusPending, want: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, CanTransition(testCase.from, testCase.to))
		})
	}
}

func TestTerminalStatus(t *testing.T) {
	assert.True(t, TerminalStatus(StatusCompleted))
	assert.True(t, TerminalStatus(StatusDelivered))
	assert.True(t, TerminalStatus(StatusCancelled))
	assert.False(t, TerminalStatus(StatusPending))
	assert.False(t, TerminalStatus(StatusReady))
}
