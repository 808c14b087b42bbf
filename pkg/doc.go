// Package pkg provides the libraries behind the groundgrid ground grid
// mesh calculator.
//
// # Overview
//
// A ground grid is a square mesh of bare copper wires buried under a site.
// Given the total number of wires, the length of each wire and the overhang
// left past the outermost crossings, groundgrid splits the wires into a
// horizontal and a vertical layer and spaces each layer evenly.
//
// The pkg directory is organized as:
//
//  1. [grid] - The calculator (validation, partition, spacing, positions)
//  2. [units] - Feet/inch conversion at the input boundary
//  3. [report] - Text, JSON and YAML summaries, and reading them back
//  4. [render] - The rod diagram ([render/diagram], [render/sink]) and the
//     Graphviz plan view ([render/plan])
//  5. [pipeline] - Orchestration (calculate → render → write → open)
//  6. [config] - The optional TOML settings file
//
// # Architecture
//
// The typical data flow:
//
//	total wires, wire length, overhang
//	         ↓
//	    [grid] package (GridSpec → GridLayout)
//	         ↓
//	    [report] / [render] packages
//	         ↓
//	    summary + PNG/SVG/PDF/DOT/JSON/YAML files
//
// # Quick Start
//
//	l, err := grid.Calculate(grid.GridSpec{
//	    TotalWires:   10,
//	    WireLengthIn: units.ToInches(10, units.Foot),
//	    OverhangIn:   6,
//	})
//	if err != nil {
//	    return err
//	}
//	fmt.Print(report.Text(l))
//	png, err := sink.RenderPNG(diagram.Build(l))
//
// # Error Handling
//
// All packages return [errors.Error] values with a code, so callers can
// tell parse, validation and computation failures apart with
// [errors.IsParse], [errors.IsValidation] and [errors.IsComputation].
//
// [grid]: github.com/matzehuels/groundgrid/pkg/grid
// [units]: github.com/matzehuels/groundgrid/pkg/units
// [report]: github.com/matzehuels/groundgrid/pkg/report
// [render]: github.com/matzehuels/groundgrid/pkg/render
// [render/diagram]: github.com/matzehuels/groundgrid/pkg/render/diagram
// [render/sink]: github.com/matzehuels/groundgrid/pkg/render/sink
// [render/plan]: github.com/matzehuels/groundgrid/pkg/render/plan
// [pipeline]: github.com/matzehuels/groundgrid/pkg/pipeline
// [config]: github.com/matzehuels/groundgrid/pkg/config
// [errors.Error]: github.com/matzehuels/groundgrid/pkg/errors.Error
// [errors.IsParse]: github.com/matzehuels/groundgrid/pkg/errors.IsParse
// [errors.IsValidation]: github.com/matzehuels/groundgrid/pkg/errors.IsValidation
// [errors.IsComputation]: github.com/matzehuels/groundgrid/pkg/errors.IsComputation
package pkg
