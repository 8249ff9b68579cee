package assembly

import (
	"cmp"
	"slices"

	"github.com/james-bowman/sparse"
)

type triplet struct {
	row, col int
	val      float64
}

// toCSR canonicalizes an accumulation buffer: entries are stably sorted by
// (row, col) and duplicates are summed in buffer order, then packed as CSR.
func toCSR(buf *sparse.COO) *sparse.CSR {
	r, c := buf.Dims()

	entries := make([]triplet, 0, buf.NNZ())
	buf.DoNonZero(func(i, j int, v float64) {
		entries = append(entries, triplet{row: i, col: j, val: v})
	})
	slices.SortStableFunc(entries, func(a, b triplet) int {
		if n := cmp.Compare(a.row, b.row); n != 0 {
			return n
		}
		return cmp.Compare(a.col, b.col)
	})

	ia := make([]int, r+1)
	ja := make([]int, 0, len(entries))
	data := make([]float64, 0, len(entries))
	for k := 0; k < len(entries); {
		e := entries[k]
		sum := e.val
		for k++; k < len(entries) && entries[k].row == e.row && entries[k].col == e.col; k++ {
			sum += entries[k].val
		}
		ja = append(ja, e.col)
		data = append(data, sum)
		ia[e.row+1]++
	}
	for i := 0; i < r; i++ {
		ia[i+1] += ia[i]
	}

	return sparse.NewCSR(r, c, ia, ja, data)
}
