package engine

// DeduplicateStrict collapses candidates whose strict signatures coincide,
// keeping the first-generated candidate of each structure as canonical.
// Returns the survivors in generation order and the number of duplicates
// dropped.
func DeduplicateStrict(cands []Candidate, page PageSize, precision int) ([]Candidate, int) {
	if precision <= 0 {
		precision = DefaultStrictPrecision
	}
	seen := make(map[string]bool, len(cands))
	kept := make([]Candidate, 0, len(cands))
	dropped := 0
	for _, c := range cands {
		sig := structuralSignature(c, page, precision)
		if seen[sig] {
			dropped++
			continue
		}
		seen[sig] = true
		kept = append(kept, c)
	}
	return kept, dropped
}

// AnnotateDuplicates retains every candidate but flags duplicates: the first
// candidate of each grouping signature keeps DuplicateOf == -1 and every
// later one points at the index of its canonical candidate within the
// returned slice. Input order is preserved.
func AnnotateDuplicates(cands []Candidate, page PageSize) []Candidate {
	first := make(map[string]int, len(cands))
	out := make([]Candidate, len(cands))
	for i, c := range cands {
		sig := structuralSignature(c, page, GroupPrecision)
		c.DuplicateOf = -1
		if j, ok := first[sig]; ok {
			c.DuplicateOf = j
		} else {
			first[sig] = i
		}
		out[i] = c
	}
	return out
}
