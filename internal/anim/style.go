package anim

import "fmt"

// Style selects how model state is rendered: a density field image or
// discrete point positions. It is fixed for the lifetime of a session
// and resolved from its string form exactly once, at construction;
// unknown values are rejected up front rather than silently skipping
// frame updates.
type Style int

const (
	StyleGrid Style = iota
	StylePoints
)

func (s Style) String() string {
	switch s {
	case StyleGrid:
		return "grid"
	case StylePoints:
		return "points"
	}
	return fmt.Sprintf("style(%d)", int(s))
}

// ParseStyle resolves a style name. "pts" is accepted as a legacy
// alias for points.
func ParseStyle(name string) (Style, error) {
	switch name {
	case "grid":
		return StyleGrid, nil
	case "points", "pts":
		return StylePoints, nil
	}
	return 0, fmt.Errorf("anim: unknown style %q (want grid or points)", name)
}
