package destination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/travelroute/destination"
)

func TestTable_AddLookup(t *testing.T) {
	tbl := destination.NewTable()
	require.NoError(t, tbl.Add("A", "Tanah_Lot_Temple", 60000))

	rec, ok := tbl.Lookup("A")
	require.True(t, ok)
	assert.Equal(t, destination.Record{ID: "A", Name: "Tanah Lot Temple", Price: 60000}, rec)

	_, ok = tbl.Lookup("Start")
	assert.False(t, ok)
}

func TestTable_Overwrite(t *testing.T) {
	tbl := destination.NewTable()
	require.NoError(t, tbl.Add("W3", "Old", 1))
	require.NoError(t, tbl.Add("W3", "New_Name", 2))

	rec, ok := tbl.Lookup("W3")
	require.True(t, ok)
	assert.Equal(t, "New Name", rec.Name)
	assert.EqualValues(t, 2, rec.Price)
	assert.Equal(t, 1, tbl.Len())
}

func TestTable_Validation(t *testing.T) {
	tbl := destination.NewTable()
	assert.ErrorIs(t, tbl.Add("", "x", 1), destination.ErrEmptyID)
	assert.ErrorIs(t, tbl.Add("A", "x", -1), destination.ErrNegativePrice)
	assert.Zero(t, tbl.Len())
}

func TestTable_Seal(t *testing.T) {
	tbl := destination.NewTable()
	require.NoError(t, tbl.Add("B", "Beach", 0))
	tbl.Seal()

	assert.True(t, tbl.Sealed())
	assert.ErrorIs(t, tbl.Add("C", "Cliff", 5), destination.ErrSealed)

	// reads still work after sealing
	_, ok := tbl.Lookup("B")
	assert.True(t, ok)
	assert.Equal(t, []string{"B"}, tbl.IDs())
}

func TestTable_IDsSorted(t *testing.T) {
	tbl := destination.NewTable()
	for _, id := range []string{"W3", "A", "C", "B"} {
		require.NoError(t, tbl.Add(id, id, 1))
	}
	assert.Equal(t, []string{"A", "B", "C", "W3"}, tbl.IDs())
}
