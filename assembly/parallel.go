package assembly

import (
	"fmt"
	"runtime"

	"github.com/james-bowman/sparse"
	"github.com/notargets/strengthcalc/element"
	"github.com/notargets/strengthcalc/partitions"
	"golang.org/x/sync/errgroup"
)

// Options controls parallel assembly
type Options struct {
	Workers  int // Concurrent partitions, <= 0 means GOMAXPROCS
	Strategy partitions.PartitionStrategy
}

// AssembleParallel assembles the same system as Assemble, splitting the
// element list into one partition per worker. Every partition fills its own
// triplet buffer; buffers are then merged in partition order and canonicalized
// once, so no matrix storage is written concurrently. With BlockPartition the
// merged buffer has the serial element order and the result is bit identical
// to Assemble; other strategies differ only by summation order.
func AssembleParallel(dof int, elements []element.Element, opts Options) (*sparse.CSR, []float64, error) {
	if dof < 1 {
		return nil, nil, fmt.Errorf("dof = %d: %w", dof, ErrInvalidDOFCount)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	pb := &partitions.PartitionBuilder{
		NumElements:   len(elements),
		NumPartitions: workers,
		Strategy:      opts.Strategy,
	}
	layout, err := pb.BuildPartitions()
	if err != nil {
		return nil, nil, fmt.Errorf("partitioning %d elements: %w", len(elements), err)
	}

	local := make([]*sparse.COO, layout.NumPartitions)
	var g errgroup.Group
	g.SetLimit(workers)
	for _, p := range layout.Partitions {
		p := p
		g.Go(func() error {
			buf := sparse.NewCOO(dof, dof, nil, nil, nil)
			for _, k := range p.Elements {
				if err := scatter(buf, dof, k, elements[k]); err != nil {
					return err
				}
			}
			local[p.ID] = buf
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	merged := sparse.NewCOO(dof, dof, nil, nil, nil)
	for _, buf := range local {
		buf.DoNonZero(func(i, j int, v float64) {
			merged.Set(i, j, v)
		})
	}

	return toCSR(merged), make([]float64, dof), nil
}
