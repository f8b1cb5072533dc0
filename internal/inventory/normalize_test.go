package inventory

import (
	"testing"

	"github.com/raidforge/itemcore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStackCount_MissingWear(t *testing.T) {
	got := NormalizeStackCount(domain.ItemInstance{ID: "i1", TemplateID: "barter_wire"})

	require.NotNil(t, got.Wear)
	require.NotNil(t, got.Wear.StackCount)
	assert.Equal(t, 1, got.Wear.StackCount.Count)
}

func TestNormalizeStackCount_MissingCountOnExistingWear(t *testing.T) {
	in := domain.ItemInstance{
		ID:         "i1",
		TemplateID: "weapon_carbine",
		Wear:       &domain.WearState{Durability: &domain.Durability{Current: 50, Max: 100}},
	}

	got := NormalizeStackCount(in)

	require.NotNil(t, got.Wear.StackCount)
	assert.Equal(t, 1, got.Wear.StackCount.Count)
	// The existing wear variant is untouched.
	require.NotNil(t, got.Wear.Durability)
	assert.Equal(t, 50.0, got.Wear.Durability.Current)
}

func TestNormalizeStackCount_SetCountUnchanged(t *testing.T) {
	for _, count := range []int{0, 1, 40} {
		in := domain.ItemInstance{
			ID:   "i1",
			Wear: &domain.WearState{StackCount: &domain.StackCount{Count: count}},
		}

		got := NormalizeStackCount(in)

		assert.Equal(t, count, got.Wear.StackCount.Count, "count %d must be preserved", count)
	}
}

func TestNormalizeStackCount_Idempotent(t *testing.T) {
	in := domain.ItemInstance{ID: "i1", TemplateID: "barter_wire"}

	once := NormalizeStackCount(in)
	twice := NormalizeStackCount(once)

	assert.Equal(t, once, twice)
}

func TestNormalizeStackCount_DoesNotMutateInput(t *testing.T) {
	in := domain.ItemInstance{
		ID:   "i1",
		Wear: &domain.WearState{Durability: &domain.Durability{Current: 10, Max: 100}},
	}

	_ = NormalizeStackCount(in)

	assert.Nil(t, in.Wear.StackCount)
}
