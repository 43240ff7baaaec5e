package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationStatus_Lifecycle(t *testing.T) {
	t.Run("PendingToSucceeded", func(t *testing.T) {
		s := NewOperationStatus()
		assert.Equal(t, OperationIdle, s.Phase)

		s.Begin(false)
		assert.Equal(t, OperationPending, s.Phase)
		assert.True(t, s.Loading)
		assert.False(t, s.ActionLoading)

		s.Succeed()
		assert.Equal(t, OperationSucceeded, s.Phase)
		assert.False(t, s.Loading)
		assert.Empty(t, s.Error)
	})

	t.Run("PendingToFailed", func(t *testing.T) {
		s := NewOperationStatus()
		s.Begin(true)
		assert.True(t, s.ActionLoading)

		s.Fail("server error (500): boom")
		assert.Equal(t, OperationFailed, s.Phase)
		assert.False(t, s.ActionLoading)
		assert.Equal(t, "server error (500): boom", s.Error)
	})

	t.Run("TerminalPhaseHoldsUntilReset", func(t *testing.T) {
		s := NewOperationStatus()
		s.Begin(false)
		s.Fail("boom")
		assert.Equal(t, OperationFailed, s.Phase)

		s.Reset()
		assert.Equal(t, OperationIdle, s.Phase)
		assert.Empty(t, s.Error)
		assert.False(t, s.Loading)
	})
}

func TestErrors(t *testing.T) {
	t.Run("ValidationError", func(t *testing.T) {
		err := NewValidationError("text", "must not be empty")
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), "text")
	})

	t.Run("NotFoundError", func(t *testing.T) {
		err := NewNotFoundError("booking", "b1")
		assert.True(t, IsNotFound(err))
		assert.Contains(t, err.Error(), "b1")
	})

	t.Run("APIErrorNetworkVsServer", func(t *testing.T) {
		network := &APIError{Message: "booking API unreachable"}
		assert.True(t, network.IsNetwork())

		server := &APIError{StatusCode: 500, Message: "boom"}
		assert.False(t, server.IsNetwork())
		assert.Contains(t, server.Error(), "500")
	})
}
