package dag

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMode is returned by [ParseRenderMode] for unrecognized mode names.
var ErrUnknownMode = errors.New("unknown render mode")

// RenderMode selects the rendering strategy.
type RenderMode int

const (
	// ModeAuto renders simple chains horizontally and everything else
	// vertically. It is the zero value.
	ModeAuto RenderMode = iota
	// ModeVertical always uses the layered top-to-bottom layout.
	ModeVertical
	// ModeHorizontal renders a single line [A] → [B] → [C] following the
	// first child of each node.
	ModeHorizontal
)

// String returns the lowercase name of the mode.
func (m RenderMode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeVertical:
		return "vertical"
	case ModeHorizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("RenderMode(%d)", int(m))
	}
}

// ParseRenderMode converts a mode name to a [RenderMode]. Matching is case
// insensitive and the empty string yields [ModeAuto].
func ParseRenderMode(s string) (RenderMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "vertical", "v":
		return ModeVertical, nil
	case "horizontal", "h":
		return ModeHorizontal, nil
	default:
		return ModeAuto, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// ResolveMode returns the mode a render call uses: [ModeAuto] becomes
// [ModeHorizontal] for a simple chain and [ModeVertical] otherwise.
func (d *DAG) ResolveMode() RenderMode {
	if d.mode != ModeAuto {
		return d.mode
	}
	if d.IsSimpleChain() {
		return ModeHorizontal
	}
	return ModeVertical
}
