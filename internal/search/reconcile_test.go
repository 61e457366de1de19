package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadscout-hq/leadscout/internal/domain"
)

func TestReconcile_ReceiptPassesThroughVerbatim(t *testing.T) {
	rs := &domain.ResultSet[domain.JobPosting]{
		Items:   []domain.JobPosting{{Title: "Engineer", Company: "Acme"}},
		Receipt: &domain.Receipt{Provider: "acme", AmountPaidUSD: 0.0123},
	}

	out := Reconcile("req-1", rs)

	assert.Equal(t, "req-1", out.RequestID)
	assert.Equal(t, rs.Items, out.Items)
	require.NotNil(t, out.Receipt)
	assert.Equal(t, "acme", out.Receipt.Provider)
	assert.Equal(t, 0.0123, out.Receipt.AmountPaidUSD)
	assert.False(t, out.Failed())
}

func TestReconcile_AbsentReceiptStaysAbsent(t *testing.T) {
	out := Reconcile("req-2", &domain.ResultSet[domain.JobPosting]{
		Items: []domain.JobPosting{{Title: "Engineer"}},
	})

	assert.Nil(t, out.Receipt, "absence of a receipt must not become a zero-cost receipt")
	assert.False(t, out.Failed())
}

func TestReconcile_ReceiptWithEmptyItems(t *testing.T) {
	out := Reconcile("req-3", &domain.ResultSet[domain.Contact]{
		Receipt: &domain.Receipt{Provider: "acme", AmountPaidUSD: 0.002},
	})

	assert.Empty(t, out.Items)
	require.NotNil(t, out.Receipt)
	assert.Equal(t, 0.002, out.Receipt.AmountPaidUSD)
	assert.False(t, out.Failed(), "an empty paid result set is a success, not an error")
}

func TestReconcileFailure_CarriesNoReceipt(t *testing.T) {
	serr := domain.NewRejectedError(500, "rate limited")
	out := ReconcileFailure[domain.JobPosting]("req-4", serr)

	assert.Equal(t, "req-4", out.RequestID)
	assert.Nil(t, out.Receipt)
	assert.Empty(t, out.Items)
	require.True(t, out.Failed())
	assert.Same(t, serr, out.Err)
}
