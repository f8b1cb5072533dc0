package catalog

import (
	"context"
	"testing"

	"github.com/raidforge/itemcore/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTemplates() []domain.ItemTemplate {
	return []domain.ItemTemplate{
		{
			ID:          "weapon_carbine",
			Name:        "Scout Carbine",
			BaseClasses: []string{domain.BaseClassWeapon},
			Props:       domain.TemplateProps{MaxDurability: 100},
		},
		{
			ID:          "container_ammo_crate",
			Name:        "Sealed Ammo Crate",
			BaseClasses: []string{domain.BaseClassContainer},
			Slots: []domain.SlotDef{
				{ID: "crate_rifle", MaxCount: 60, Filter: []string{"ammo_rifle_std", "ammo_pistol_std"}},
			},
		},
	}
}

func TestTemplateByID_Unknown(t *testing.T) {
	store := NewStore(testTemplates())

	tpl, ok := store.TemplateByID(context.Background(), "missing")

	assert.False(t, ok)
	assert.Nil(t, tpl)
}

func TestTemplateByID_ReturnsIndependentCopy(t *testing.T) {
	store := NewStore(testTemplates())
	ctx := context.Background()

	first, ok := store.TemplateByID(ctx, "container_ammo_crate")
	require.True(t, ok)

	// Vandalize everything reachable from the returned copy.
	first.Name = "stolen"
	first.BaseClasses[0] = "mutated"
	first.Slots[0].Filter[0] = "mutated"
	first.Slots[0].MaxCount = -1

	second, ok := store.TemplateByID(ctx, "container_ammo_crate")
	require.True(t, ok)
	assert.Equal(t, "Sealed Ammo Crate", second.Name)
	assert.Equal(t, domain.BaseClassContainer, second.BaseClasses[0])
	assert.Equal(t, "ammo_rifle_std", second.Slots[0].Filter[0])
	assert.Equal(t, 60, second.Slots[0].MaxCount)
}

func TestAllTemplates_DeepCopyIsolation(t *testing.T) {
	store := NewStore(testTemplates())
	ctx := context.Background()

	first := store.AllTemplates(ctx)
	require.Len(t, first, 2)
	first[0].Name = "stolen"
	first[1].Slots[0].Filter[0] = "mutated"

	second := store.AllTemplates(ctx)
	require.Len(t, second, 2)
	assert.Equal(t, "Scout Carbine", second[0].Name)
	assert.Equal(t, "ammo_rifle_std", second[1].Slots[0].Filter[0])
}

func TestAllTemplates_PreservesLoadOrder(t *testing.T) {
	store := NewStore(testTemplates())

	all := store.AllTemplates(context.Background())

	require.Len(t, all, 2)
	assert.Equal(t, "weapon_carbine", all[0].ID)
	assert.Equal(t, "container_ammo_crate", all[1].ID)
}

func TestNewStore_IsolatedFromSourceSlice(t *testing.T) {
	source := testTemplates()
	store := NewStore(source)

	source[0].Name = "mutated after construction"
	source[1].Slots[0].Filter[0] = "mutated"

	tpl, ok := store.TemplateByID(context.Background(), "weapon_carbine")
	require.True(t, ok)
	assert.Equal(t, "Scout Carbine", tpl.Name)

	crate, ok := store.TemplateByID(context.Background(), "container_ammo_crate")
	require.True(t, ok)
	assert.Equal(t, "ammo_rifle_std", crate.Slots[0].Filter[0])
}
