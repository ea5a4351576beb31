package dlx

import "fmt"

func errInvariant(field string, idx int32) error {
	return fmt.Errorf("dlx: invariant violated at node %d: %s", idx, field)
}

func errCountMismatch(col, got, want int) error {
	return fmt.Errorf("dlx: column %d node_count mismatch: got %d, header says %d", col, got, want)
}
