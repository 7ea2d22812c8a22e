package entitystore

import (
	"testing"

	"github.com/specialistvlad/lootgridgo/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	s, err := New(nil)
	require.NoError(t, err)

	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Names())
	_, ok := s.Get("vehicleAnything")
	assert.False(t, ok)
}

func TestGet(t *testing.T) {
	records := []entity.Record{
		{Name: "vehicleBar", LootList: "vehicleCustom"},
		{Name: "vehicleFoo", Extends: "vehicleBar"},
	}
	s, err := New(records)
	require.NoError(t, err)

	foo, ok := s.Get("vehicleFoo")
	require.True(t, ok)
	assert.Equal(t, records[1], foo)

	_, ok = s.Get("")
	assert.False(t, ok)
}

func TestNew_DoesNotAliasInput(t *testing.T) {
	records := []entity.Record{{Name: "vehicleBar", LootList: "a"}}
	s, err := New(records)
	require.NoError(t, err)

	records[0].LootList = "b"

	bar, ok := s.Get("vehicleBar")
	require.True(t, ok)
	assert.Equal(t, "a", bar.LootList)
}

func TestNew_LaterDuplicateWins(t *testing.T) {
	s, err := New([]entity.Record{
		{Name: "vehicleBar", LootList: "first"},
		{Name: "vehicleBar", LootList: "second"},
		{Name: ""},
	})
	require.NoError(t, err)

	bar, ok := s.Get("vehicleBar")
	require.True(t, ok)
	assert.Equal(t, "second", bar.LootList)
	assert.Equal(t, 1, s.Len())
}

func TestNames_Sorted(t *testing.T) {
	s, err := New([]entity.Record{{Name: "vehicleZ"}, {Name: "vehicleA"}, {Name: "vehicleM"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"vehicleA", "vehicleM", "vehicleZ"}, s.Names())
}
