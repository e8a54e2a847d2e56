package morfessor

import (
	"fmt"
	"io"
)

// WriteReport writes tree's overall cost followed by one line per leaf
// morph, in the reference implementation's plain-text format
// (segmentation.cc's print): a fixed five-decimal cost header, then
// "<count> <morph>" for every leaf, one per line. Leaf iteration order
// is unspecified, matching Store.Leaves.
func WriteReport(w io.Writer, tree *Tree) error {
	if _, err := fmt.Fprintf(w, "Overall cost: %.5f\n", tree.Cost.OverallCost()); err != nil {
		return err
	}
	for _, p := range tree.Store.Leaves() {
		if _, err := fmt.Fprintf(w, "%d %s\n", p.Frequency, p.Word); err != nil {
			return err
		}
	}
	return nil
}
