package search

import "github.com/leadscout-hq/leadscout/internal/domain"

// Reconcile builds the settled outcome for one funded submission, binding the
// payment receipt to the request id that paid for it. The receipt passes
// through exactly as the backend returned it: absence stays absent rather
// than being replaced by a fabricated zero-cost receipt, and a receipt
// accompanying an empty item list is still surfaced together with it.
func Reconcile[T any](requestID string, rs *domain.ResultSet[T]) *domain.Outcome[T] {
	return &domain.Outcome[T]{
		RequestID: requestID,
		Items:     rs.Items,
		Receipt:   rs.Receipt,
	}
}

// ReconcileFailure builds the settled outcome for a failed submission. No
// receipt is ever attached to a failure.
func ReconcileFailure[T any](requestID string, err *domain.SearchError) *domain.Outcome[T] {
	return &domain.Outcome[T]{
		RequestID: requestID,
		Err:       err,
	}
}
