// core/region/region.go
package region

import (
	"fmt"
	"regexp"
	"strconv"
)

// EndOfReference marks a region whose end was not given and therefore runs
// to the end of the reference sequence.
const EndOfReference = -1

// Region is a reference-qualified coordinate span. Start is always a
// concrete position (0 when the specifier omitted it); End is
// EndOfReference unless the specifier gave one or it was filled in from a
// reference-length map. Start <= End is not checked here.
type Region struct {
	Name  string
	Start int
	End   int
}

// HasEnd reports whether the region has an explicit end position.
func (r Region) HasEnd() bool { return r.End != EndOfReference }

// String renders the region in specifier syntax, so that Parse(r.String())
// yields r back.
func (r Region) String() string {
	switch {
	case r.Start == 0 && !r.HasEnd():
		return r.Name
	case !r.HasEnd():
		return fmt.Sprintf("%s:%d-", r.Name, r.Start)
	default:
		return fmt.Sprintf("%s:%d-%d", r.Name, r.Start, r.End)
	}
}

// Specifier grammar: name[:pos] where pos is one of "", END, START-, START-END.
var specRE = regexp.MustCompile(`^(\w+)(?::(?:(\d+)-(\d*)|(\d+))?)?$`)

// Parse decodes a single region specifier:
//
//	chr1            whole reference
//	chr1:1000       start=0, end=1000
//	chr1:500-       start=500, open end
//	chr1:500-1500   start=500, end=1500
//
// The specifier must match the grammar in full; anything else is an error.
func Parse(spec string) (Region, error) {
	m := specRE.FindStringSubmatch(spec)
	if m == nil {
		return Region{}, fmt.Errorf("invalid region %q (want name, name:end, name:start- or name:start-end)", spec)
	}
	r := Region{Name: m[1], End: EndOfReference}
	switch {
	case m[4] != "": // name:END
		end, err := strconv.Atoi(m[4])
		if err != nil {
			return Region{}, fmt.Errorf("invalid region %q: %v", spec, err)
		}
		r.End = end
	case m[2] != "": // name:START- or name:START-END
		start, err := strconv.Atoi(m[2])
		if err != nil {
			return Region{}, fmt.Errorf("invalid region %q: %v", spec, err)
		}
		r.Start = start
		if m[3] != "" {
			end, err := strconv.Atoi(m[3])
			if err != nil {
				return Region{}, fmt.Errorf("invalid region %q: %v", spec, err)
			}
			r.End = end
		}
	}
	return r, nil
}

// ParseAll decodes specs in order, one Region per input string. When a
// region has no end and refLengths is non-nil, the end is taken from the
// reference's total length; a name missing from the map is an error. The
// first bad specifier aborts the whole batch.
func ParseAll(specs []string, refLengths map[string]int) ([]Region, error) {
	out := make([]Region, 0, len(specs))
	for _, s := range specs {
		r, err := Parse(s)
		if err != nil {
			return nil, err
		}
		if !r.HasEnd() && refLengths != nil {
			n, ok := refLengths[r.Name]
			if !ok {
				return nil, fmt.Errorf("region %q: reference %q not present in length map", s, r.Name)
			}
			r.End = n
		}
		out = append(out, r)
	}
	return out, nil
}
