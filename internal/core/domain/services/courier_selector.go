package services

import (
	"fooddelivery/internal/core/domain/model/courier"
	"fooddelivery/internal/core/domain/model/order"
)

// CourierSelector chooses a courier for an order from a set of candidates.
// The workflow engine treats selection as best-effort: a nil result means no
// suitable courier and the order stays unassigned.
//
// The interface exists so a future implementation can substitute load- or
// distance-aware assignment without changing the workflow engine's contract.
type CourierSelector interface {
	// Select returns the chosen courier, or nil when no candidate suits the order.
	Select(o *order.Order, candidates []*courier.Courier) *courier.Courier
}

// FirstAvailableSelector picks the first candidate in available status.
// No ranking, fairness or locality is applied.
type FirstAvailableSelector struct{}

// NewFirstAvailableSelector creates the default selection strategy.
func NewFirstAvailableSelector() FirstAvailableSelector {
	return FirstAvailableSelector{}
}

// Select returns the first available candidate, or nil when none is available.
func (FirstAvailableSelector) Select(_ *order.Order, candidates []*courier.Courier) *courier.Courier {
	for _, c := range candidates {
		if c != nil && c.IsAvailable() {
			return c
		}
	}
	return nil
}
