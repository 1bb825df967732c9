package db_models

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"wander/internal/models/response_models"
)

// Pure itinerary composition helpers. The repository applies InsertItem /
// RemoveItemByID inside a transaction and persists the result, so the
// ordering invariants live in one place.

// SameDay reports whether two day values refer to the same day bucket,
// treating nil (unscheduled) as its own bucket.
func SameDay(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// ItemDisplayName derives the name shown for an item: the stop name when the
// stop is loaded, otherwise the item's own notes.
func ItemDisplayName(it ItineraryItem) string {
	if it.Stop.Name != "" {
		return it.Stop.Name
	}
	return it.Notes
}

// FilterItemsByKeyword keeps items whose display name or city contains the
// keyword, case-insensitively. The filter is stable and an empty keyword
// returns the input unchanged.
func FilterItemsByKeyword(items []ItineraryItem, keyword string) []ItineraryItem {
	if keyword == "" {
		return items
	}

	kw := strings.ToLower(keyword)
	out := make([]ItineraryItem, 0, len(items))
	for _, it := range items {
		name := strings.ToLower(ItemDisplayName(it))
		city := strings.ToLower(it.Stop.City)
		if strings.Contains(name, kw) || strings.Contains(city, kw) {
			out = append(out, it)
		}
	}
	return out
}

// DayGroup is one bucket of the day-grouped view. Day is nil for the
// trailing unscheduled bucket.
type DayGroup struct {
	Day   *int
	Items []ItineraryItem
}

// GroupItemsByDay partitions items into per-day buckets sorted by day
// ascending with unscheduled items last, and by sort order (then creation
// time, then ID) within a day. The result is a total resort, so it is
// deterministic regardless of the input order.
func GroupItemsByDay(items []ItineraryItem) []DayGroup {
	sorted := make([]ItineraryItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !SameDay(a.Day, b.Day) {
			if a.Day == nil {
				return false
			}
			if b.Day == nil {
				return true
			}
			return *a.Day < *b.Day
		}
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		if a.CreatedAt != b.CreatedAt {
			return a.CreatedAt < b.CreatedAt
		}
		return a.ID.String() < b.ID.String()
	})

	var groups []DayGroup
	for _, it := range sorted {
		if len(groups) == 0 || !SameDay(groups[len(groups)-1].Day, it.Day) {
			groups = append(groups, DayGroup{Day: it.Day})
		}
		groups[len(groups)-1].Items = append(groups[len(groups)-1].Items, it)
	}
	return groups
}

// InsertItem places it among items. With desired nil the item is appended to
// its day (max existing order + 1, or 0 for an empty day). Otherwise desired
// is clamped to the day's length and every item in the day at order >= the
// target is shifted up by one, preserving relative order.
func InsertItem(items []ItineraryItem, it ItineraryItem, desired *int) []ItineraryItem {
	out := make([]ItineraryItem, len(items), len(items)+1)
	copy(out, items)

	dayCount := 0
	maxOrder := -1
	for _, existing := range out {
		if !SameDay(existing.Day, it.Day) {
			continue
		}
		dayCount++
		if existing.SortOrder > maxOrder {
			maxOrder = existing.SortOrder
		}
	}

	if desired == nil {
		it.SortOrder = maxOrder + 1
		return append(out, it)
	}

	target := *desired
	if target > dayCount {
		target = dayCount
	}
	for i := range out {
		if SameDay(out[i].Day, it.Day) && out[i].SortOrder >= target {
			out[i].SortOrder++
		}
	}
	it.SortOrder = target
	return append(out, it)
}

// RemoveItemByID removes the item with the given ID and renumbers the
// remaining items of its day to a contiguous zero-based sequence. The second
// return is false when no item matched.
func RemoveItemByID(items []ItineraryItem, id uuid.UUID) ([]ItineraryItem, bool) {
	var removed *ItineraryItem
	out := make([]ItineraryItem, 0, len(items))
	for _, it := range items {
		if it.ID == id {
			r := it
			removed = &r
			continue
		}
		out = append(out, it)
	}
	if removed == nil {
		return items, false
	}

	// Renumber the affected day in current order.
	next := 0
	for i := range out {
		if SameDay(out[i].Day, removed.Day) {
			out[i].SortOrder = next
			next++
		}
	}
	return out, true
}

// BuildItineraryDetailResponse maps an itinerary with preloaded items and
// stops into the day-grouped payload returned to clients.
func BuildItineraryDetailResponse(itin *Itinerary, items []ItineraryItem) *response_models.ItineraryDetailResponse {
	groups := GroupItemsByDay(items)

	out := &response_models.ItineraryDetailResponse{
		ID:         itin.ID,
		TripID:     itin.TripID,
		Notes:      itin.Notes,
		TotalItems: len(items),
		Days:       make([]response_models.ItineraryDayResponse, 0, len(groups)),
	}

	for _, g := range groups {
		day := response_models.ItineraryDayResponse{Day: g.Day}
		for _, it := range g.Items {
			day.Items = append(day.Items, response_models.ItineraryItemResponse{
				ID:        it.ID,
				Order:     it.SortOrder,
				StartTime: formatTimePtr(it.StartTime),
				EndTime:   formatTimePtr(it.EndTime),
				Notes:     it.Notes,
				Stop: response_models.StopSummary{
					ID:        it.Stop.ID,
					Name:      it.Stop.Name,
					City:      it.Stop.City,
					Address:   it.Stop.Address,
					Latitude:  it.Stop.Latitude,
					Longitude: it.Stop.Longitude,
					Category:  it.Stop.Category,
				},
			})
		}
		out.Days = append(out.Days, day)
	}
	return out
}

func formatTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
