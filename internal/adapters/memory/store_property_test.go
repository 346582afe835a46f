package memory

import (
	"context"
	"testing"

	"pgregory.net/rapid"

	"github.com/jsamuelsen/quote-service/internal/domain"
)

// quoteTextGenerator generates already-trimmed quote text.
func quoteTextGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z0-9][A-Za-z0-9 .,!?]{0,30}[A-Za-z0-9.!?]`)
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))

	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}

		seen[s] = struct{}{}
		out = append(out, s)
	}

	return out
}

// Property: after any sequence of appends the list equals the model sequence,
// ids equal positions, and rejected appends leave the store unchanged.
func testAppend_ModelProperties(t *rapid.T) {
	ctx := context.Background()
	seed := dedupe(rapid.SliceOfN(quoteTextGenerator(), 0, 10).Draw(t, "seed"))
	store := NewStore(seed)
	model := append([]string(nil), seed...)

	inserts := rapid.SliceOfN(quoteTextGenerator(), 0, 20).Draw(t, "inserts")
	for _, text := range inserts {
		before := store.Len(ctx)
		q, total, err := store.Append(ctx, text)

		if contains(model, text) {
			if !domain.IsConflict(err) {
				t.Fatalf("expected conflict for %q, got %v", text, err)
			}

			if store.Len(ctx) != before {
				t.Fatalf("rejected append changed size: %d -> %d", before, store.Len(ctx))
			}

			continue
		}

		if err != nil {
			t.Fatalf("Append(%q) failed: %v", text, err)
		}

		model = append(model, text)

		if total != before+1 || q.ID != total-1 || q.Text != text {
			t.Fatalf("Append(%q) = %+v total %d, before %d", text, q, total, before)
		}
	}

	quotes, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(quotes) != len(model) {
		t.Fatalf("List length %d, model %d", len(quotes), len(model))
	}

	for i, q := range quotes {
		if q.ID != i || q.Text != model[i] {
			t.Fatalf("position %d: got %+v, want %q", i, q, model[i])
		}
	}
}

func TestAppend_ModelProperties(t *testing.T) {
	rapid.Check(t, testAppend_ModelProperties)
}

// Property: a random pick is always a current element, and fails iff empty.
func testRandom_MembershipProperties(t *rapid.T) {
	ctx := context.Background()
	seed := dedupe(rapid.SliceOfN(quoteTextGenerator(), 0, 15).Draw(t, "seed"))
	store := NewStore(seed)

	q, total, err := store.Random(ctx)
	if len(seed) == 0 {
		if !domain.IsNotFound(err) {
			t.Fatalf("expected not found on empty store, got %v", err)
		}

		return
	}

	if err != nil {
		t.Fatalf("Random failed: %v", err)
	}

	if total != len(seed) || !contains(seed, q.Text) || seed[q.ID] != q.Text {
		t.Fatalf("Random = %+v total %d, seed %v", q, total, seed)
	}
}

func TestRandom_MembershipProperties(t *testing.T) {
	rapid.Check(t, testRandom_MembershipProperties)
}

// Property: listing twice with no append in between yields identical results.
func testList_IdempotentProperties(t *rapid.T) {
	ctx := context.Background()
	store := NewStore(dedupe(rapid.SliceOfN(quoteTextGenerator(), 0, 15).Draw(t, "seed")))

	first, _ := store.List(ctx)
	second, _ := store.List(ctx)

	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("position %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestList_IdempotentProperties(t *testing.T) {
	rapid.Check(t, testList_IdempotentProperties)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
