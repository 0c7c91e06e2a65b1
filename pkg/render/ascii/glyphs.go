package ascii

// Glyphs written by the renderer. They are part of the output format.
const (
	VLine      = '│'
	HLine      = '─'
	ArrowDown  = '↓'
	ArrowRight = '→'
	CycleArrow = '⇄'

	// convergence: └──┴──┘
	CornerDownRight = '└'
	CornerDownLeft  = '┘'
	TeeUp           = '┴'

	// divergence: ┌──┬──┐
	CornerUpRight = '┌'
	CornerUpLeft  = '┐'
	TeeDown       = '┬'
)

// Fixed texts.
const (
	EmptyText        = "Empty DAG"
	NoRootText       = "(no root)"
	CycleHeader      = "⚠️  CYCLE DETECTED - Not a valid DAG"
	CycleChainHeader = "Cyclic dependency chain:"
	CycleFooter      = "This creates a circular dependency that cannot be laid out."
	ComplexCycleText = "Complex cycle detected in graph."
)

// chainSeparator joins nodes in horizontal mode.
const chainSeparator = " → "

// componentGap separates nodes of one level in a disconnected component.
const componentGap = "   "
