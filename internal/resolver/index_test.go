package resolver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/lootgridgo/internal/entity"
	"github.com/specialistvlad/lootgridgo/internal/entitystore"
	"github.com/specialistvlad/lootgridgo/internal/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapIndex_MatchesEntityStore(t *testing.T) {
	// --- Arrange ---
	cat := defaultCatalog(`<lootcontainer name="vehicleCustom" size="10,8"/>`)
	records := []entity.Record{
		{Name: "vehicleFoo", Extends: "vehicleBar"},
		{Name: "vehicleBar", LootList: "vehicleMinibike"},
		{Name: "vehicleBar", LootList: "vehicleCustom"},
		{Name: "vehicleLoopA", Extends: "vehicleLoopB"},
		{Name: "vehicleLoopB", Extends: "vehicleLoopA"},
		{Name: "vehicleOrphan", Extends: "vehicleBaz"},
		{Name: ""},
	}
	store, err := entitystore.New(records)
	require.NoError(t, err)
	fallback := newMapIndex(records)

	// --- Act & Assert ---
	assert.Equal(t, store.Names(), fallback.Names())
	for _, rec := range records {
		wantRes, wantNotes := resolveOne(rec, store, len(records), cat, policy.Default())
		gotRes, gotNotes := resolveOne(rec, fallback, len(records), cat, policy.Default())

		if diff := cmp.Diff(wantRes, gotRes); diff != "" {
			t.Errorf("resolveOne(%q) mismatch (-store +map):\n%s", rec.Name, diff)
		}
		if diff := cmp.Diff(wantNotes, gotNotes); diff != "" {
			t.Errorf("resolveOne(%q) notes mismatch (-store +map):\n%s", rec.Name, diff)
		}
	}

	bar, ok := fallback.Get("vehicleBar")
	require.True(t, ok)
	assert.Equal(t, "vehicleCustom", bar.LootList, "the later duplicate wins")
	_, ok = fallback.Get("")
	assert.False(t, ok)
}
