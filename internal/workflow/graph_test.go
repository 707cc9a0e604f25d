package workflow_test

import (
	"testing"

	"github.com/covergrid/brokercore/internal/domain"
	"github.com/covergrid/brokercore/internal/model"
	"github.com/covergrid/brokercore/internal/workflow"
	"github.com/stretchr/testify/assert"
)

func TestClaimGraph(t *testing.T) {
	statuses := []model.ClaimStatus{
		model.ClaimSubmitted,
		model.ClaimUnderReview,
		model.ClaimApproved,
		model.ClaimRejected,
	}

	allowed := map[[2]model.ClaimStatus]bool{
		{model.ClaimSubmitted, model.ClaimUnderReview}: true,
		{model.ClaimUnderReview, model.ClaimApproved}:  true,
		{model.ClaimUnderReview, model.ClaimRejected}:  true,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]model.ClaimStatus{from, to}]
			assert.Equal(t, want, workflow.ClaimGraph.CanTransition(from, to), "%s -> %s", from, to)
		}
	}

	t.Run("no shortcut to a decision", func(t *testing.T) {
		assert.False(t, workflow.ClaimGraph.CanTransition(model.ClaimSubmitted, model.ClaimApproved))
		assert.False(t, workflow.ClaimGraph.CanTransition(model.ClaimSubmitted, model.ClaimRejected))
	})

	t.Run("decided statuses are terminal", func(t *testing.T) {
		assert.True(t, workflow.ClaimGraph.Terminal(model.ClaimApproved))
		assert.True(t, workflow.ClaimGraph.Terminal(model.ClaimRejected))
		assert.False(t, workflow.ClaimGraph.Terminal(model.ClaimSubmitted))
	})
}

func TestTicketGraph(t *testing.T) {
	working := []model.TicketStatus{
		model.TicketOpen,
		model.TicketInProgress,
		model.TicketWaitingOnClient,
	}

	t.Run("working statuses mesh freely", func(t *testing.T) {
		for _, from := range working {
			for _, to := range working {
				if from == to {
					continue
				}
				assert.True(t, workflow.TicketGraph.CanTransition(from, to), "%s -> %s", from, to)
			}
		}
	})

	t.Run("any working status can resolve", func(t *testing.T) {
		for _, from := range working {
			assert.True(t, workflow.TicketGraph.CanTransition(from, model.TicketResolved), "%s", from)
		}
	})

	t.Run("resolved reopens or closes", func(t *testing.T) {
		assert.True(t, workflow.TicketGraph.CanTransition(model.TicketResolved, model.TicketInProgress))
		assert.True(t, workflow.TicketGraph.CanTransition(model.TicketResolved, model.TicketClosed))
		assert.False(t, workflow.TicketGraph.CanTransition(model.TicketResolved, model.TicketOpen))
	})

	t.Run("closed is terminal", func(t *testing.T) {
		assert.True(t, workflow.TicketGraph.Terminal(model.TicketClosed))
		for _, to := range working {
			assert.False(t, workflow.TicketGraph.CanTransition(model.TicketClosed, to))
		}
	})

	t.Run("no direct close from working statuses", func(t *testing.T) {
		for _, from := range working {
			assert.False(t, workflow.TicketGraph.CanTransition(from, model.TicketClosed), "%s", from)
		}
	})
}

func TestInvitationGraph(t *testing.T) {
	t.Run("pending reaches every terminal status", func(t *testing.T) {
		assert.True(t, workflow.InvitationGraph.CanTransition(model.InvitationPending, model.InvitationAccepted))
		assert.True(t, workflow.InvitationGraph.CanTransition(model.InvitationPending, model.InvitationExpired))
		assert.True(t, workflow.InvitationGraph.CanTransition(model.InvitationPending, model.InvitationRevoked))
	})

	t.Run("terminal statuses have no way back", func(t *testing.T) {
		for _, s := range []model.InvitationStatus{
			model.InvitationAccepted,
			model.InvitationExpired,
			model.InvitationRevoked,
		} {
			assert.True(t, workflow.InvitationGraph.Terminal(s), "%s", s)
			assert.False(t, workflow.InvitationGraph.CanTransition(s, model.InvitationPending), "%s", s)
		}
	})
}

func TestGraphValidate(t *testing.T) {
	err := workflow.ClaimGraph.Validate(model.ClaimSubmitted, model.ClaimApproved)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Contains(t, err.Error(), "submitted")
	assert.Contains(t, err.Error(), "approved")

	assert.NoError(t, workflow.ClaimGraph.Validate(model.ClaimSubmitted, model.ClaimUnderReview))

	t.Run("self transition is invalid", func(t *testing.T) {
		assert.ErrorIs(t, workflow.TicketGraph.Validate(model.TicketOpen, model.TicketOpen), domain.ErrInvalidTransition)
	})

	t.Run("unknown status is invalid", func(t *testing.T) {
		assert.ErrorIs(t, workflow.ClaimGraph.Validate(model.ClaimStatus("bogus"), model.ClaimApproved), domain.ErrInvalidTransition)
	})
}
