package seqrecord

import "fmt"

// Fuzziness describes how precisely a position is known.
type Fuzziness int

const (
	// Exact positions are known precisely.
	Exact Fuzziness = iota

	// Before means the position lies somewhere before Pos (e.g., "<5").
	Before

	// After means the position lies somewhere after Pos (e.g., ">5").
	After

	// Within means the position lies in [Pos, Pos+Extension].
	Within

	// Unknown means nothing is known beyond Pos as a best guess.
	Unknown
)

// Position is a single, possibly fuzzy, coordinate on a sequence.
type Position struct {
	Pos       int
	Extension int
	Fuzz      Fuzziness
}

// ExactPosition returns a position with no fuzziness.
func ExactPosition(pos int) Position {
	return Position{Pos: pos}
}

func (p Position) String() string {
	switch p.Fuzz {
	case Before:
		return fmt.Sprintf("<%d", p.Pos)
	case After:
		return fmt.Sprintf(">%d", p.Pos)
	case Within:
		return fmt.Sprintf("(%d.%d)", p.Pos, p.Pos+p.Extension)
	case Unknown:
		return fmt.Sprintf("?%d", p.Pos)
	}
	return fmt.Sprintf("%d", p.Pos)
}

// Location is a half-open range [Start, End) on a sequence.
// Strand is +1, -1 or 0 when unknown or not applicable.
type Location struct {
	Start, End Position
	Strand     int
}

// NewLocation returns an exact location spanning [start, end).
func NewLocation(start, end int) Location {
	return Location{Start: ExactPosition(start), End: ExactPosition(end)}
}

// ResolvedStart returns the start coordinate with fuzziness removed. The
// lowest possible value is used for ranged positions.
func (loc Location) ResolvedStart() int {
	return loc.Start.Pos
}

// ResolvedEnd returns the end coordinate with fuzziness removed. The highest
// possible value is used for ranged positions.
func (loc Location) ResolvedEnd() int {
	return loc.End.Pos + loc.End.Extension
}

// Len returns the number of residues covered by the resolved location.
func (loc Location) Len() int {
	return loc.ResolvedEnd() - loc.ResolvedStart()
}

func (loc Location) String() string {
	s := fmt.Sprintf("[%s:%s]", loc.Start, loc.End)
	switch loc.Strand {
	case 1:
		s += "(+)"
	case -1:
		s += "(-)"
	}
	return s
}

// Feature is an annotated region of a sequence.
type Feature struct {
	ID       string
	Type     string
	Location Location

	// Qualifiers hold feature attributes as text, as most sequence formats
	// do (e.g., GenBank "/note=..." qualifiers).
	Qualifiers map[string]string
}

// Qualifier returns the qualifier stored under key and whether it exists.
func (f Feature) Qualifier(key string) (string, bool) {
	if f.Qualifiers == nil {
		return "", false
	}
	v, ok := f.Qualifiers[key]
	return v, ok
}

// SetQualifier stores a qualifier, allocating the map if needed.
func (f *Feature) SetQualifier(key, value string) {
	if f.Qualifiers == nil {
		f.Qualifiers = make(map[string]string)
	}
	f.Qualifiers[key] = value
}

func (f Feature) String() string {
	if len(f.Type) == 0 {
		return fmt.Sprintf("%s %s", f.ID, f.Location)
	}
	return fmt.Sprintf("%s (%s) %s", f.ID, f.Type, f.Location)
}
