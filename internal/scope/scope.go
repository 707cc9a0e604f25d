// internal/scope/scope.go

// Package scope computes the set of clients a principal may act upon.
// Resolution is pure: it only inspects the principal (with its grants and
// affiliate preloaded) and never touches the store, so callers may invoke
// it repeatedly and before any mutation.
package scope

import (
	"github.com/covergrid/brokercore/internal/model"
	"github.com/google/uuid"
)

// Set is the resolved visibility of one principal. Either Global is true,
// or Clients holds the explicit client set. When the principal is a
// grant-less scoped role, AffiliateID additionally narrows rows within the
// single client to the principal's own affiliate and its dependents.
type Set struct {
	Global      bool
	Clients     map[uuid.UUID]struct{}
	AffiliateID *uuid.UUID
}

// Contains reports whether the set covers the given client.
func (s Set) Contains(clientID uuid.UUID) bool {
	if s.Global {
		return true
	}
	_, ok := s.Clients[clientID]
	return ok
}

// Empty reports whether the set grants no access at all.
func (s Set) Empty() bool {
	return !s.Global && len(s.Clients) == 0
}

// CoversAffiliate applies the row-level predicate for grant-less scoped
// principals: only the principal's own affiliate and its direct dependents
// are visible. Principals without a row restriction cover every affiliate
// of their in-scope clients.
func (s Set) CoversAffiliate(a *model.Affiliate) bool {
	if a == nil {
		return false
	}
	if !s.Contains(a.ClientID) {
		return false
	}
	if s.AffiliateID == nil {
		return true
	}
	if a.ID == *s.AffiliateID {
		return true
	}
	return a.PrimaryAffiliateID != nil && *a.PrimaryAffiliateID == *s.AffiliateID
}

// Resolve computes the principal's scope set. It is total: a nil,
// deactivated, or malformed principal resolves to the empty set rather
// than an error.
func Resolve(p *model.Principal) Set {
	if p == nil || !p.Active || !p.Role.Valid() {
		return Set{}
	}

	if p.Role.Global() {
		return Set{Global: true}
	}

	if len(p.Grants) > 0 {
		clients := make(map[uuid.UUID]struct{}, len(p.Grants))
		for _, g := range p.Grants {
			clients[g.ClientID] = struct{}{}
		}
		return Set{Clients: clients}
	}

	// Grant-less scoped role: access reaches no further than the
	// principal's own affiliate and its dependents.
	if p.Affiliate == nil {
		return Set{}
	}
	affiliateID := p.Affiliate.ID
	return Set{
		Clients:     map[uuid.UUID]struct{}{p.Affiliate.ClientID: {}},
		AffiliateID: &affiliateID,
	}
}

// HasAccess reports whether the principal may act on the given client. It
// never fails: malformed input yields false.
func HasAccess(p *model.Principal, clientID uuid.UUID) bool {
	return Resolve(p).Contains(clientID)
}
