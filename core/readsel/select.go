// core/readsel/select.go
package readsel

import (
	"errors"
	"fmt"
	"sort"
)

// Read is a sequence record as the selector sees it: an identifier plus its
// length in bases. IDs are assumed unique within one call.
type Read struct {
	ID     string
	Length int
}

// Result partitions the input ids: Selected holds the chosen reads (longest
// first), Others the remainder in input order. The two slices never overlap
// and together cover every input id.
type Result struct {
	Selected []string
	Others   []string
}

// Unset disables a mode in Options.
const Unset = -1

// Options chooses the selection mode. Exactly one field must be set.
type Options struct {
	Longest int // keep the longest N percent of reads, 0-100
	Bases   int // keep the longest reads within a total base budget
}

// Select validates the mode choice and dispatches to TopPercent or
// WithinBases. Both or neither mode set is an error before any work.
func Select(reads []Read, opt Options) (Result, error) {
	byPercent := opt.Longest != Unset
	byBases := opt.Bases != Unset
	switch {
	case byPercent && byBases:
		return Result{}, errors.New("longest and bases are mutually exclusive")
	case !byPercent && !byBases:
		return Result{}, errors.New("one of longest or bases is required")
	case byPercent:
		return TopPercent(reads, opt.Longest)
	default:
		return WithinBases(reads, opt.Bases), nil
	}
}

// TopPercent keeps the floor(len(reads)*pct/100) longest reads. Ties on
// length resolve by input order, so the selected set is one valid top-k set
// rather than a uniquely determined one.
func TopPercent(reads []Read, pct int) (Result, error) {
	if pct < 0 || pct > 100 {
		return Result{}, fmt.Errorf("longest percentage %d outside [0,100]", pct)
	}
	keep := len(reads) * pct / 100
	order := byDescendingLength(reads)
	return partition(reads, order[:keep]), nil
}

// WithinBases keeps the longest reads whose cumulative length stays within
// budget, scanning longest first. The longest read is always kept, even
// when it alone exceeds the budget, so the result is non-empty whenever the
// input is.
func WithinBases(reads []Read, budget int) Result {
	order := byDescendingLength(reads)
	sum := 0
	kept := 0
	for i, idx := range order {
		sum += reads[idx].Length
		if sum > budget && i > 0 {
			break
		}
		kept = i + 1
	}
	return partition(reads, order[:kept])
}

// byDescendingLength returns input indexes ordered longest first; stable,
// so equal-length reads keep their input order.
func byDescendingLength(reads []Read) []int {
	order := make([]int, len(reads))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return reads[order[a]].Length > reads[order[b]].Length
	})
	return order
}

func partition(reads []Read, chosen []int) Result {
	keep := make(map[int]bool, len(chosen))
	res := Result{Selected: make([]string, 0, len(chosen))}
	for _, i := range chosen {
		keep[i] = true
		res.Selected = append(res.Selected, reads[i].ID)
	}
	for i, r := range reads {
		if !keep[i] {
			res.Others = append(res.Others, r.ID)
		}
	}
	return res
}
