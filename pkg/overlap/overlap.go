// Package overlap finds and classifies vertical collisions between widgets.
//
// The analyzer consumes a build result and produces one [Record] per
// unordered pair of base-class boxes in the same column. Findings are data,
// never errors: the analyzed screens ship with overlapping layouts, and the
// engine's job is to report them deterministically so they can be asserted
// against and fixed.
//
// Severity follows the analysis' reading:
//
//   - Overlap: the intervals share pixels (amount > 0)
//   - Adjacent: disjoint but closer than the minimum acceptable gap,
//     including exactly touching edges (gap = 0); flagged as a near-overlap
//     warning
//   - None: disjoint with acceptable spacing
//
// Two cross-cutting checks sit outside the pairwise report: the scrollbar
// hazard of the scrollable word list against the sidebar buttons
// ([Analyzer.ScrollbarCheck]) and the coverage of base widgets by expanded
// dropdown panels ([Analyzer.OverlayCoverage]).
package overlap

import (
	"fmt"

	"github.com/aliace-game/screenlayout/pkg/geometry"
	"github.com/aliace-game/screenlayout/pkg/layout"
	"github.com/aliace-game/screenlayout/pkg/screen"
)

// DefaultMinGap is the minimum acceptable spacing between stacked widgets.
// The analysis treats a 15px gap as fine and anything tighter as worth a
// warning; 10px is the boundary it implies.
const DefaultMinGap = 10

// Kind classifies the severity of a pair finding.
type Kind int

const (
	// KindNone means the pair is disjoint with acceptable spacing.
	KindNone Kind = iota

	// KindAdjacent means the pair is disjoint but tighter than the minimum
	// gap (0 means exactly touching).
	KindAdjacent

	// KindOverlap means the pair shares vertical pixels.
	KindOverlap
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindAdjacent:
		return "adjacent"
	case KindOverlap:
		return "overlap"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Record is one pairwise finding. A and B follow declaration order.
type Record struct {
	A, B string
	Kind Kind

	// Amount is the shared vertical span for overlap findings.
	Amount int

	// Gap is the spacing for disjoint findings (0 means touching).
	Gap int

	// Warning marks adjacent findings tighter than the minimum gap.
	Warning bool
}

// String renders the diagnostic line format consumed by logs and the CLI.
func (r Record) String() string {
	switch r.Kind {
	case KindOverlap:
		return fmt.Sprintf("%s overlaps %s by %dpx", r.A, r.B, r.Amount)
	case KindAdjacent:
		return fmt.Sprintf("%s adjacent to %s, gap=%dpx", r.A, r.B, r.Gap)
	}
	return fmt.Sprintf("%s clear of %s, gap=%dpx", r.A, r.B, r.Gap)
}

// Analyzer classifies pairwise findings against a configurable minimum gap.
type Analyzer struct {
	// MinGap is the spacing below which disjoint pairs are flagged as
	// near-overlaps. Zero means DefaultMinGap; negative disables the
	// warning entirely.
	MinGap int
}

// New creates an analyzer with the default minimum gap.
func New() *Analyzer {
	return &Analyzer{MinGap: DefaultMinGap}
}

func (a *Analyzer) minGap() int {
	if a.MinGap == 0 {
		return DefaultMinGap
	}
	if a.MinGap < 0 {
		return 0
	}
	return a.MinGap
}

// Analyze produces one record per unordered pair of base boxes sharing a
// column, in declaration order.
//
// The widget counts per screen are fixed and tiny (≤12 base widgets), so a
// pairwise scan beats the bookkeeping of an interval sweep here.
func (a *Analyzer) Analyze(placed []layout.Placed) []Record {
	minGap := a.minGap()

	base := make([]layout.Placed, 0, len(placed))
	for _, p := range placed {
		if p.Spec.Class == screen.ClassBase {
			base = append(base, p)
		}
	}

	var records []Record
	for i := 0; i < len(base); i++ {
		for j := i + 1; j < len(base); j++ {
			if base[i].Spec.Column != base[j].Spec.Column {
				continue
			}
			records = append(records, classify(base[i].Box, base[j].Box, minGap))
		}
	}
	return records
}

func classify(a, b geometry.Box, minGap int) Record {
	rec := Record{A: a.ID, B: b.ID}

	relation, amount := geometry.Compare(a, b)
	if relation == geometry.Intersecting {
		rec.Kind = KindOverlap
		rec.Amount = amount
		return rec
	}

	rec.Gap = amount
	if amount < minGap || amount == 0 {
		rec.Kind = KindAdjacent
		rec.Warning = amount < minGap
		return rec
	}

	rec.Kind = KindNone
	return rec
}

// Defects filters a report down to the findings worth acting on: overlaps
// and near-overlap warnings.
func Defects(records []Record) []Record {
	var out []Record
	for _, r := range records {
		if r.Kind == KindOverlap || r.Warning {
			out = append(out, r)
		}
	}
	return out
}

// Between returns the record for an unordered widget pair, if present.
func Between(records []Record, a, b string) (Record, bool) {
	for _, r := range records {
		if (r.A == a && r.B == b) || (r.A == b && r.B == a) {
			return r, true
		}
	}
	return Record{}, false
}
