package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leadscout-hq/leadscout/internal/domain"
)

func TestAccumulator_PrependNewestFirst(t *testing.T) {
	acc := NewAccumulator[domain.JobPosting]()

	acc.Prepend([]domain.JobPosting{{Title: "first-a"}, {Title: "first-b"}})
	acc.Prepend([]domain.JobPosting{{Title: "second-a"}})

	items := acc.Items()
	assert.Equal(t, []domain.JobPosting{
		{Title: "second-a"},
		{Title: "first-a"},
		{Title: "first-b"},
	}, items)
	assert.Equal(t, 3, acc.Len())
}

func TestAccumulator_EmptyPrependIsNoOp(t *testing.T) {
	acc := NewAccumulator[domain.JobPosting]()
	acc.Prepend([]domain.JobPosting{{Title: "kept"}})

	acc.Prepend(nil)
	acc.Prepend([]domain.JobPosting{})

	assert.Equal(t, 1, acc.Len())
}

func TestAccumulator_ItemsReturnsCopy(t *testing.T) {
	acc := NewAccumulator[domain.JobPosting]()
	acc.Prepend([]domain.JobPosting{{Title: "original"}})

	items := acc.Items()
	items[0].Title = "mutated"

	assert.Equal(t, "original", acc.Items()[0].Title)
}
