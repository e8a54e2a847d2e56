package morfessor

// stringLeafCost is one leaf's contribution to the morph-string-cost
// term: the coded length of the morph's own characters under table,
// independent of whether table was built with or without the
// end-of-morph marker — the marker, when present, only affects table's
// normalization (how probability mass is split between letters and the
// boundary symbol), never appears as a character inside a morph string
// itself.
func stringLeafCost(table LetterTable, morph string) float64 {
	var sum float64
	for _, c := range morph {
		sum += table.Cost[c]
	}
	return sum
}

// stringCost sums stringLeafCost over every leaf in store; used by
// CostModel.Recompute.
func stringCost(store *Store, table LetterTable) float64 {
	var sum float64
	for _, n := range store.nodes {
		if n.IsLeaf() {
			sum += stringLeafCost(table, n.Morph)
		}
	}
	return sum
}
