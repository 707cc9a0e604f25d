// internal/workflow/graph.go

// Package workflow defines the per-entity status transition graphs and the
// generic validator applied to them. Graphs are immutable reference data,
// built once at package init and safe to share process-wide.
package workflow

import (
	"fmt"

	"github.com/covergrid/brokercore/internal/domain"
	"github.com/covergrid/brokercore/internal/model"
)

// Graph is a directed status-transition graph. A status missing from the
// map is terminal.
type Graph[S ~string] map[S][]S

// CanTransition reports whether the edge from -> to exists.
func (g Graph[S]) CanTransition(from, to S) bool {
	for _, next := range g[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Validate returns domain.ErrInvalidTransition when the edge from -> to is
// not part of the graph.
func (g Graph[S]) Validate(from, to S) error {
	if !g.CanTransition(from, to) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, to)
	}
	return nil
}

// Terminal reports whether no outbound edges exist for the status.
func (g Graph[S]) Terminal(s S) bool {
	return len(g[s]) == 0
}

// ClaimGraph is monotonic: review is mandatory and the decided statuses are
// terminal. There is deliberately no shortcut from submitted straight to a
// decision.
var ClaimGraph = Graph[model.ClaimStatus]{
	model.ClaimSubmitted:   {model.ClaimUnderReview},
	model.ClaimUnderReview: {model.ClaimApproved, model.ClaimRejected},
}

// TicketGraph supports back-and-forth triage between the three working
// statuses, resolution from any of them, and a single reopen edge from
// resolved. Closed is terminal.
var TicketGraph = Graph[model.TicketStatus]{
	model.TicketOpen:            {model.TicketInProgress, model.TicketWaitingOnClient, model.TicketResolved},
	model.TicketInProgress:      {model.TicketOpen, model.TicketWaitingOnClient, model.TicketResolved},
	model.TicketWaitingOnClient: {model.TicketOpen, model.TicketInProgress, model.TicketResolved},
	model.TicketResolved:        {model.TicketInProgress, model.TicketClosed},
}

// InvitationGraph covers the invitation lifecycle: only pending has
// outbound edges.
var InvitationGraph = Graph[model.InvitationStatus]{
	model.InvitationPending: {model.InvitationAccepted, model.InvitationExpired, model.InvitationRevoked},
}
