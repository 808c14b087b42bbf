// Package grid computes wire spacing for a rectangular ground-grid mesh.
//
// # Overview
//
// A ground grid is built from straight rods of equal length laid in two
// perpendicular layers. Each rod leaves the same overhang past the outermost
// crossing on both ends, so the crossings along any rod are spread over the
// effective length:
//
//	effective = wireLength - 2*overhang
//
// # Wire Count
//
// The wire count given to [Calculate] is the grand total over both layers.
// It is split as
//
//	horizontal = ceil(total/2)
//	vertical   = total - horizontal
//
// so an odd total puts the extra wire in the horizontal layer. A total below
// two cannot form a grid and is rejected.
//
// # Units
//
// Every length in this package is in inches. Convert other units with the
// [units] package before building a [GridSpec].
//
// # Usage
//
//	l, err := grid.Calculate(grid.GridSpec{
//	    TotalWires:   10,
//	    WireLengthIn: 120,
//	    OverhangIn:   6,
//	})
//	if err != nil {
//	    return err // ValidationError or ComputationError, see pkg/errors
//	}
//	fmt.Println(l.Vertical.PositionsIn) // [6 33 60 87 114]
//
// [units]: github.com/matzehuels/groundgrid/pkg/units
package grid
