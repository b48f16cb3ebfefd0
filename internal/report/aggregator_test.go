package report

import (
	"fmt"
	"sync"
	"testing"
)

func testItem(name string, sizeMB float64) Item {
	return Item{
		DisplayName:  name,
		Path:         "~/Library/Caches/" + name,
		SizeMB:       sizeMB,
		ModifiedDate: "2024-01-15",
		Category:     CategoryCache,
		OwnerLabel:   name,
	}
}

func TestAggregatorGlobalFloor(t *testing.T) {
	agg := NewAggregator()

	if agg.Add(0, 0, "/a", testItem("tiny", 0.004)) {
		t.Error("item below ~5KB floor must be dropped")
	}
	if agg.Add(0, 1, "/b", testItem("zero", 0)) {
		t.Error("zero-size item must be dropped")
	}
	if !agg.Add(0, 2, "/c", testItem("kept", 0.01)) {
		t.Error("item above floor must be kept")
	}

	if got := len(agg.Items()); got != 1 {
		t.Fatalf("Items() len = %d, want 1", got)
	}
}

func TestAggregatorDeduplicatesPaths(t *testing.T) {
	agg := NewAggregator()

	if !agg.Add(0, 0, "/home/u/.config", testItem("first", 5)) {
		t.Fatal("first add must succeed")
	}
	if agg.Add(1, 0, "/home/u/.config", testItem("second", 7)) {
		t.Error("same absolute path must not be double-reported")
	}

	items := agg.Items()
	if len(items) != 1 || items[0].DisplayName != "first" {
		t.Fatalf("Items() = %+v, want only the first item", items)
	}
}

func TestAggregatorOrdering(t *testing.T) {
	agg := NewAggregator()

	// Arrival order scrambled across locations, as a worker pool would do.
	agg.Add(2, 0, "/x", testItem("loc2-a", 1))
	agg.Add(0, 1, "/y", testItem("loc0-b", 1))
	agg.Add(1, 0, "/z", testItem("loc1-a", 1))
	agg.Add(0, 0, "/w", testItem("loc0-a", 1))

	items := agg.Items()
	want := []string{"loc0-a", "loc0-b", "loc1-a", "loc2-a"}
	for i, name := range want {
		if items[i].DisplayName != name {
			t.Errorf("Items()[%d] = %q, want %q", i, items[i].DisplayName, name)
		}
	}
}

func TestAggregatorConcurrentAdds(t *testing.T) {
	agg := NewAggregator()

	var wg sync.WaitGroup
	for loc := 0; loc < 8; loc++ {
		wg.Add(1)
		go func(loc int) {
			defer wg.Done()
			for seq := 0; seq < 50; seq++ {
				path := fmt.Sprintf("/loc%d/entry%d", loc, seq)
				agg.Add(loc, seq, path, testItem(path, 1))
			}
		}(loc)
	}
	wg.Wait()

	items := agg.Items()
	if len(items) != 400 {
		t.Fatalf("Items() len = %d, want 400", len(items))
	}

	// Deterministic order regardless of goroutine interleaving.
	again := agg.Items()
	for i := range items {
		if items[i] != again[i] {
			t.Fatalf("Items() not stable at %d: %+v vs %+v", i, items[i], again[i])
		}
	}
}

func TestAggregatorWarnings(t *testing.T) {
	agg := NewAggregator()
	agg.Warn("cannot enumerate /usr/local: permission denied")

	warnings := agg.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("Warnings() len = %d, want 1", len(warnings))
	}
}

func TestPayloadAccumulators(t *testing.T) {
	payload := &Payload{
		Items: []Item{
			{SizeMB: 10.5, Category: CategoryCache},
			{SizeMB: 2.25, Category: CategoryLeftover},
			{SizeMB: 1.25, Category: CategoryCache},
		},
	}

	if got := payload.TotalSizeMB(); got != 14.0 {
		t.Errorf("TotalSizeMB() = %v, want 14.0", got)
	}
	counts := payload.CountByCategory()
	if counts[CategoryCache] != 2 || counts[CategoryLeftover] != 1 {
		t.Errorf("CountByCategory() = %v", counts)
	}
}
