package engine

import (
	"testing"
)

func TestStrictSignatureIgnoresPhotosAndNames(t *testing.T) {
	page := PageSize{Width: 200, Height: 100}
	a := Candidate{
		Kind: "grid",
		Name: "grid-1x2",
		Cells: []Cell{
			{Rect: rect(0, 0, 100, 100), Photo: &Photo{ID: "a", Width: 10, Height: 10}},
			{Rect: rect(100, 0, 100, 100), Photo: &Photo{ID: "b", Width: 20, Height: 10}},
		},
	}
	b := Candidate{
		Kind: "split",
		Name: "split-v-1+1",
		Cells: []Cell{
			// Same geometry, different order and different photos.
			{Rect: rect(100, 0, 100, 100), Photo: &Photo{ID: "c", Width: 30, Height: 10}},
			{Rect: rect(0, 0, 100, 100)},
		},
	}

	if StrictSignature(a, page) != StrictSignature(b, page) {
		t.Error("signatures must depend on geometry only")
	}
}

func TestStrictSignatureDistinguishesGeometry(t *testing.T) {
	page := PageSize{Width: 100, Height: 100}
	a := Candidate{Cells: []Cell{{Rect: rect(0, 0, 50, 100)}, {Rect: rect(50, 0, 50, 100)}}}
	b := Candidate{Cells: []Cell{{Rect: rect(0, 0, 60, 100)}, {Rect: rect(60, 0, 40, 100)}}}

	if StrictSignature(a, page) == StrictSignature(b, page) {
		t.Error("different geometries must not share a strict signature")
	}
}

func TestSignatureIsPageSizeIndependent(t *testing.T) {
	// The same descriptor instantiated on two page sizes normalizes to the
	// same structure.
	small := PageSize{Width: 100, Height: 100}
	large := PageSize{Width: 800, Height: 800}
	a := Candidate{Cells: []Cell{{Rect: rect(0, 0, 50, 100)}, {Rect: rect(50, 0, 50, 100)}}}
	b := Candidate{Cells: []Cell{{Rect: rect(0, 0, 400, 800)}, {Rect: rect(400, 0, 400, 800)}}}

	if StrictSignature(a, small) != StrictSignature(b, large) {
		t.Error("normalized signatures must match across page sizes")
	}
}

func TestGroupSignatureCoarserThanStrict(t *testing.T) {
	page := PageSize{Width: 100, Height: 100}
	a := Candidate{Cells: []Cell{{Rect: rect(0, 0, 50, 100)}, {Rect: rect(50, 0, 50, 100)}}}
	b := Candidate{Cells: []Cell{{Rect: rect(0, 0, 50.01, 100)}, {Rect: rect(50.01, 0, 49.99, 100)}}}

	if StrictSignature(a, page) == StrictSignature(b, page) {
		t.Error("strict signatures should separate sub-percent differences")
	}
	if GroupSignature(a, page) != GroupSignature(b, page) {
		t.Error("group signatures should collapse sub-percent differences")
	}
}

func TestDeduplicateStrictKeepsFirst(t *testing.T) {
	page := PageSize{Width: 100, Height: 100}
	full := []Cell{{Rect: rect(0, 0, 100, 100)}}
	halves := []Cell{{Rect: rect(0, 0, 50, 100)}, {Rect: rect(50, 0, 50, 100)}}

	cands := []Candidate{
		{Name: "first", Cells: full, DuplicateOf: -1},
		{Name: "other", Cells: halves, DuplicateOf: -1},
		{Name: "second", Cells: full, DuplicateOf: -1},
		{Name: "third", Cells: full, DuplicateOf: -1},
	}

	kept, dropped := DeduplicateStrict(cands, page, DefaultStrictPrecision)
	if dropped != 2 {
		t.Errorf("expected 2 dropped, got %d", dropped)
	}
	if len(kept) != 2 || kept[0].Name != "first" || kept[1].Name != "other" {
		t.Fatalf("expected first-seen candidates to survive in order, got %+v", kept)
	}
}

func TestAnnotateDuplicates(t *testing.T) {
	page := PageSize{Width: 100, Height: 100}
	full := []Cell{{Rect: rect(0, 0, 100, 100)}}
	halves := []Cell{{Rect: rect(0, 0, 50, 100)}, {Rect: rect(50, 0, 50, 100)}}

	cands := []Candidate{
		{Name: "a", Cells: full},
		{Name: "b", Cells: halves},
		{Name: "c", Cells: full},
	}

	out := AnnotateDuplicates(cands, page)
	if len(out) != 3 {
		t.Fatalf("lenient mode must retain every candidate, got %d", len(out))
	}
	if out[0].DuplicateOf != -1 || out[1].DuplicateOf != -1 {
		t.Error("canonical candidates must carry -1")
	}
	if out[2].DuplicateOf != 0 {
		t.Errorf("expected duplicate to point at index 0, got %d", out[2].DuplicateOf)
	}
}
