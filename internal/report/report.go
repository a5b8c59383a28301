// Package report renders analysis results for humans or machines.
package report

import (
	"fmt"
	"io"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

const (
	FormatText = "text"
	FormatJSON = "json"
)

// Result holds both sums computed for one schematic.
type Result struct {
	Path    string
	PartSum uint32
	GearSum uint32
}

// resultType is the cty object type results are converted to for JSON.
var resultType = cty.Object(map[string]cty.Type{
	"path": cty.String,
	"sum":  cty.Number,
	"gear": cty.Number,
})

// Write renders results to w in the given format.
func Write(w io.Writer, format string, results []Result) error {
	switch format {
	case FormatText:
		return writeText(w, results)
	case FormatJSON:
		return writeJSON(w, results)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeText prints the two labelled lines per result. With more than one
// result each block is headed by its path.
func writeText(w io.Writer, results []Result) error {
	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "== %s\n", r.Path); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "sum: %d\ngear: %d\n", r.PartSum, r.GearSum); err != nil {
			return err
		}
	}
	return nil
}

// writeJSON prints a JSON array with one object per result.
func writeJSON(w io.Writer, results []Result) error {
	val := cty.ListValEmpty(resultType)
	if len(results) > 0 {
		vals := make([]cty.Value, 0, len(results))
		for _, r := range results {
			vals = append(vals, cty.ObjectVal(map[string]cty.Value{
				"path": cty.StringVal(r.Path),
				"sum":  cty.NumberUIntVal(uint64(r.PartSum)),
				"gear": cty.NumberUIntVal(uint64(r.GearSum)),
			}))
		}
		val = cty.ListVal(vals)
	}

	b, err := ctyjson.Marshal(val, val.Type())
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err = fmt.Fprintln(w)
	return err
}
