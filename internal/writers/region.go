// internal/writers/region.go
package writers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"fxtools-core/region"
)

// RegionWriters maps output format names to writer funcs (format → handler,
// register-once map rather than a switch).
var RegionWriters = map[string]func(w io.Writer, regs []region.Region, header bool) error{
	"text": WriteRegionTSV,
	"json": WriteRegionJSON,
}

// WriteRegions dispatches on format.
func WriteRegions(format string, w io.Writer, regs []region.Region, header bool) error {
	fn, ok := RegionWriters[format]
	if !ok {
		return fmt.Errorf("unknown region output %q (no writer registered)", format)
	}
	return fn(w, regs, header)
}

const regionTSVHeader = "name\tstart\tend"

// WriteRegionTSV writes one region per line; the end column is empty for
// regions that run to the end of the reference.
func WriteRegionTSV(w io.Writer, regs []region.Region, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, regionTSVHeader); err != nil {
			return err
		}
	}
	for _, r := range regs {
		end := ""
		if r.HasEnd() {
			end = strconv.Itoa(r.End)
		}
		if _, err := fmt.Fprintf(w, "%s\t%d\t%s\n", r.Name, r.Start, end); err != nil {
			return err
		}
	}
	return nil
}

type regionJSON struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	End   *int   `json:"end"` // null when the region runs to the reference end
}

// WriteRegionJSON writes the regions as one indented JSON array.
func WriteRegionJSON(w io.Writer, regs []region.Region, _ bool) error {
	list := make([]regionJSON, 0, len(regs))
	for _, r := range regs {
		rj := regionJSON{Name: r.Name, Start: r.Start}
		if r.HasEnd() {
			end := r.End
			rj.End = &end
		}
		list = append(list, rj)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}
