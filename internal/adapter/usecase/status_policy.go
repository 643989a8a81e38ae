package usecase

import (
	"fmt"
	"slices"

	"adsight/internal/core/domain"
	"adsight/internal/core/port"
)

// PermissivePolicy accepts any move between valid statuses.
type PermissivePolicy struct{}

// Check accepts any enumerated target state.
func (PermissivePolicy) Check(_, to domain.CampaignStatus) error {
	if !to.Valid() {
		return port.ErrInvalidStatus
	}
	return nil
}

// AdjacencyPolicy accepts only the edges of a fixed lifecycle graph.
// Setting the current status again is always allowed.
type AdjacencyPolicy struct {
	next map[domain.CampaignStatus][]domain.CampaignStatus
}

// NewAdjacencyPolicy returns the campaign lifecycle:
// draft -> active, active <-> paused, active|paused -> completed.
func NewAdjacencyPolicy() AdjacencyPolicy {
	return AdjacencyPolicy{next: map[domain.CampaignStatus][]domain.CampaignStatus{
		domain.StatusDraft:  {domain.StatusActive},
		domain.StatusActive: {domain.StatusPaused, domain.StatusCompleted},
		domain.StatusPaused: {domain.StatusActive, domain.StatusCompleted},
	}}
}

// Check allows staying in the same state and the moves listed by
// NewAdjacencyPolicy; anything else is ErrInvalidTransition.
func (p AdjacencyPolicy) Check(from, to domain.CampaignStatus) error {
	if !to.Valid() {
		return port.ErrInvalidStatus
	}
	if from == to || slices.Contains(p.next[from], to) {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s", port.ErrInvalidTransition, from, to)
}
