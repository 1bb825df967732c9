package db_models_test

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dbm "wander/internal/models/db_models"
)

// ---- helpers ---------------------------------------------------------------

func day(d int) *int { return &d }

func order(o int) *int { return &o }

func item(d *int, order int, name, city string) dbm.ItineraryItem {
	it := dbm.ItineraryItem{
		Day:       d,
		SortOrder: order,
		Stop:      dbm.Stop{Name: name, City: city},
	}
	it.ID = uuid.New()
	return it
}

func ids(items []dbm.ItineraryItem) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

// flattenGroups returns the grouped items back as one sequence.
func flattenGroups(groups []dbm.DayGroup) []dbm.ItineraryItem {
	var out []dbm.ItineraryItem
	for _, g := range groups {
		out = append(out, g.Items...)
	}
	return out
}

// assertContiguousOrders checks that each day's orders form a zero-based
// sequence with no duplicates and no gaps.
func assertContiguousOrders(t *testing.T, items []dbm.ItineraryItem) {
	t.Helper()
	for _, g := range dbm.GroupItemsByDay(items) {
		for want, it := range g.Items {
			assert.Equal(t, want, it.SortOrder)
		}
	}
}

// ---- GroupItemsByDay -------------------------------------------------------

func TestGroupItemsByDay_SortsDaysAndOrders(t *testing.T) {
	items := []dbm.ItineraryItem{
		item(day(1), 1, "Louvre", "Paris"),
		item(nil, 0, "Flex stop", ""),
		item(day(0), 1, "Notre-Dame", "Paris"),
		item(day(1), 0, "Orsay", "Paris"),
		item(day(0), 0, "Eiffel Tower", "Paris"),
	}

	groups := dbm.GroupItemsByDay(items)

	require.Len(t, groups, 3)
	require.NotNil(t, groups[0].Day)
	assert.Equal(t, 0, *groups[0].Day)
	require.NotNil(t, groups[1].Day)
	assert.Equal(t, 1, *groups[1].Day)
	assert.Nil(t, groups[2].Day, "unscheduled items sort last")

	assert.Equal(t, "Eiffel Tower", groups[0].Items[0].Stop.Name)
	assert.Equal(t, "Notre-Dame", groups[0].Items[1].Stop.Name)
	assert.Equal(t, "Orsay", groups[1].Items[0].Stop.Name)
	assert.Equal(t, "Louvre", groups[1].Items[1].Stop.Name)
}

func TestGroupItemsByDay_DeterministicForShuffledInput(t *testing.T) {
	items := []dbm.ItineraryItem{
		item(day(0), 0, "A", ""),
		item(day(0), 1, "B", ""),
		item(day(2), 0, "C", ""),
		item(nil, 0, "D", ""),
		item(day(1), 0, "E", ""),
	}
	want := flattenGroups(dbm.GroupItemsByDay(items))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]dbm.ItineraryItem, len(items))
		copy(shuffled, items)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := flattenGroups(dbm.GroupItemsByDay(shuffled))
		assert.Equal(t, ids(want), ids(got))
	}
}

func TestGroupItemsByDay_Idempotent(t *testing.T) {
	items := []dbm.ItineraryItem{
		item(day(1), 0, "A", ""),
		item(day(0), 1, "B", ""),
		item(day(0), 0, "C", ""),
		item(nil, 0, "D", ""),
	}

	once := dbm.GroupItemsByDay(items)
	again := dbm.GroupItemsByDay(flattenGroups(once))

	assert.Equal(t, once, again)
}

func TestGroupItemsByDay_Empty(t *testing.T) {
	assert.Empty(t, dbm.GroupItemsByDay(nil))
}

// ---- FilterItemsByKeyword --------------------------------------------------

func TestFilterItemsByKeyword_EmptyKeywordIsIdentity(t *testing.T) {
	items := []dbm.ItineraryItem{
		item(day(0), 0, "Louvre", "Paris"),
		item(day(0), 1, "Colosseum", "Rome"),
	}

	got := dbm.FilterItemsByKeyword(items, "")

	assert.Equal(t, items, got)
}

func TestFilterItemsByKeyword_CaseInsensitive(t *testing.T) {
	items := []dbm.ItineraryItem{
		item(day(0), 0, "Louvre", "Paris"),
		item(day(0), 1, "Colosseum", "Rome"),
		item(day(1), 0, "Paris Walking Tour", "Paris"),
	}

	upper := dbm.FilterItemsByKeyword(items, "PARIS")
	lower := dbm.FilterItemsByKeyword(items, "paris")

	assert.Equal(t, upper, lower)
	require.Len(t, lower, 2)
}

func TestFilterItemsByKeyword_MatchesNameAndCityStably(t *testing.T) {
	items := []dbm.ItineraryItem{
		item(day(0), 0, "Louvre", "Paris"),
		item(day(0), 1, "Colosseum", "Rome"),
		item(day(1), 0, "Roman Baths", "Bath"),
	}

	got := dbm.FilterItemsByKeyword(items, "rom")

	require.Len(t, got, 2)
	assert.Equal(t, "Colosseum", got[0].Stop.Name, "original relative order preserved")
	assert.Equal(t, "Roman Baths", got[1].Stop.Name)
}

func TestFilterItemsByKeyword_NoMatch(t *testing.T) {
	items := []dbm.ItineraryItem{item(day(0), 0, "Louvre", "Paris")}

	assert.Empty(t, dbm.FilterItemsByKeyword(items, "tokyo"))
}

// ---- InsertItem ------------------------------------------------------------

func TestInsertItem_AppendsToEmptyDay(t *testing.T) {
	got := dbm.InsertItem(nil, item(day(0), 0, "A", ""), nil)

	require.Len(t, got, 1)
	assert.Equal(t, 0, got[0].SortOrder)
}

func TestInsertItem_AppendsAfterExisting(t *testing.T) {
	items := []dbm.ItineraryItem{
		item(day(0), 0, "A", ""),
		item(day(0), 1, "B", ""),
	}

	got := dbm.InsertItem(items, item(day(0), 0, "C", ""), nil)

	require.Len(t, got, 3)
	assert.Equal(t, 2, got[2].SortOrder)
	assertContiguousOrders(t, got)
}

func TestInsertItem_ShiftsOccupiedOrders(t *testing.T) {
	a := item(day(1), 0, "A", "")
	b := item(day(1), 1, "B", "")
	newItem := item(day(1), 0, "X", "")

	got := dbm.InsertItem([]dbm.ItineraryItem{a, b}, newItem, order(0))

	groups := dbm.GroupItemsByDay(got)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Items, 3)
	assert.Equal(t, "X", groups[0].Items[0].Stop.Name)
	assert.Equal(t, "A", groups[0].Items[1].Stop.Name)
	assert.Equal(t, "B", groups[0].Items[2].Stop.Name)
	assertContiguousOrders(t, got)
}

func TestInsertItem_ClampsDesiredOrderToEnd(t *testing.T) {
	items := []dbm.ItineraryItem{
		item(day(0), 0, "A", ""),
		item(day(0), 1, "B", ""),
	}

	got := dbm.InsertItem(items, item(day(0), 0, "C", ""), order(10))

	require.Len(t, got, 3)
	assert.Equal(t, 2, got[2].SortOrder)
	assertContiguousOrders(t, got)
}

func TestInsertItem_LeavesOtherDaysUntouched(t *testing.T) {
	other := item(day(5), 0, "Elsewhere", "")
	items := []dbm.ItineraryItem{other, item(day(0), 0, "A", "")}

	got := dbm.InsertItem(items, item(day(0), 0, "B", ""), order(0))

	for _, it := range got {
		if it.ID == other.ID {
			assert.Equal(t, 0, it.SortOrder)
		}
	}
}

// ---- RemoveItemByID --------------------------------------------------------

func TestRemoveItemByID_CompactsDay(t *testing.T) {
	a := item(day(0), 0, "A", "")
	b := item(day(0), 1, "B", "")
	c := item(day(0), 2, "C", "")

	got, ok := dbm.RemoveItemByID([]dbm.ItineraryItem{a, b, c}, b.ID)

	require.True(t, ok)
	groups := dbm.GroupItemsByDay(got)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Items, 2)
	assert.Equal(t, "A", groups[0].Items[0].Stop.Name)
	assert.Equal(t, 0, groups[0].Items[0].SortOrder)
	assert.Equal(t, "C", groups[0].Items[1].Stop.Name)
	assert.Equal(t, 1, groups[0].Items[1].SortOrder)
}

func TestRemoveItemByID_UnknownID(t *testing.T) {
	items := []dbm.ItineraryItem{item(day(0), 0, "A", "")}

	got, ok := dbm.RemoveItemByID(items, uuid.New())

	assert.False(t, ok)
	assert.Equal(t, items, got)
}

// Orders stay contiguous over any sequence of inserts and removals.
func TestMutationSequenceKeepsContiguousOrders(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var items []dbm.ItineraryItem

	for i := 0; i < 200; i++ {
		if len(items) > 0 && rng.Intn(3) == 0 {
			victim := items[rng.Intn(len(items))]
			var ok bool
			items, ok = dbm.RemoveItemByID(items, victim.ID)
			require.True(t, ok)
		} else {
			var d *int
			if rng.Intn(5) > 0 {
				d = day(rng.Intn(4))
			}
			var desired *int
			if rng.Intn(2) == 0 {
				o := rng.Intn(6)
				desired = &o
			}
			items = dbm.InsertItem(items, item(d, 0, "S", ""), desired)
		}
		assertContiguousOrders(t, items)
	}
}
