package feedback

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/brandpulseai/brandpulse/pkg/types"
)

func TestStoreAppendPreservesInsertionOrder(t *testing.T) {
	s := NewStore()
	for i := 0; i < 5; i++ {
		s.Append(types.FeedbackItem{ID: fmt.Sprintf("item-%d", i)})
	}

	all := s.All()
	if len(all) != 5 {
		t.Fatalf("Len = %d, want 5", len(all))
	}
	for i, item := range all {
		if want := fmt.Sprintf("item-%d", i); item.ID != want {
			t.Errorf("all[%d].ID = %q, want %q", i, item.ID, want)
		}
	}
}

func TestStoreAllReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Append(types.FeedbackItem{ID: "a", Sentiment: types.SentimentPositive})

	got := s.All()
	got[0].ID = "mutated"

	if s.All()[0].ID != "a" {
		t.Error("mutating All() result leaked into the store")
	}
}

func TestStoreRecentMostRecentFirst(t *testing.T) {
	s := NewStore()
	for i := 0; i < 4; i++ {
		s.Append(types.FeedbackItem{ID: fmt.Sprintf("item-%d", i)})
	}

	got := s.Recent(2)
	want := []string{"item-3", "item-2"}
	ids := []string{got[0].ID, got[1].ID}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Errorf("Recent(2) order mismatch (-want +got):\n%s", diff)
	}

	if n := len(s.Recent(0)); n != 4 {
		t.Errorf("Recent(0) returned %d items, want all 4", n)
	}
	if n := len(s.Recent(100)); n != 4 {
		t.Errorf("Recent(100) returned %d items, want 4", n)
	}
}

func TestStoreConcurrentAppends(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Append(types.FeedbackItem{ID: fmt.Sprintf("item-%d", i)})
		}(i)
	}
	wg.Wait()

	if got := s.Len(); got != 50 {
		t.Errorf("Len = %d after concurrent appends, want 50", got)
	}
}

func TestProfilesSetReplacesWholesale(t *testing.T) {
	p := NewProfiles()
	if got := p.Get(); got != (types.CompanyProfile{}) {
		t.Errorf("initial profile = %+v, want empty", got)
	}

	p.Set(types.CompanyProfile{Name: "Acme Corp", Industry: "Retail", Description: "Shoes"})
	p.Set(types.CompanyProfile{Name: "Acme Corp"})

	got := p.Get()
	if got.Industry != "" || got.Description != "" {
		t.Errorf("Set should replace wholesale, got %+v", got)
	}
}

func TestSampleItemsAreWellFormed(t *testing.T) {
	items := SampleItems()
	if len(items) == 0 {
		t.Fatal("expected non-empty sample dataset")
	}
	for _, item := range items {
		if item.Sentiment != types.SentimentPositive &&
			item.Sentiment != types.SentimentNegative &&
			item.Sentiment != types.SentimentNeutral {
			t.Errorf("sample %s has sentiment %q outside the closed set", item.ID, item.Sentiment)
		}
		if item.Intensity < 0 || item.Intensity > 10 {
			t.Errorf("sample %s intensity %d out of range", item.ID, item.Intensity)
		}
		if len(item.Topics) == 0 {
			t.Errorf("sample %s has no topics", item.ID)
		}
	}
}
