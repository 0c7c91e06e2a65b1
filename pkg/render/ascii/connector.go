package ascii

import (
	"slices"
	"strings"
)

// connection is one drawn edge between adjacent levels, as center columns.
type connection struct {
	from, to int
}

// group collects the far ends of all connections sharing one end column.
type group struct {
	key     int
	members []int
}

// groupBy groups conns by key, in ascending key order. Members keep
// connection order.
func groupBy(conns []connection, key, member func(connection) int) []group {
	var groups []group
	for _, c := range conns {
		k := key(c)
		i, found := slices.BinarySearchFunc(groups, k, func(g group, k int) int { return g.key - k })
		if found {
			groups[i].members = append(groups[i].members, member(c))
			continue
		}
		groups = slices.Insert(groups, i, group{key: k, members: []int{member(c)}})
	}
	return groups
}

func fromCol(c connection) int { return c.from }
func toCol(c connection) int   { return c.to }

// writeConnectors draws the connector lines between two levels.
//
// Pure convergence (some target has several sources, no source has several
// targets) and pure divergence (the mirror case) get three lines: stems, a
// horizontal bar per fan, and arrows. Anything else, including plain 1:1
// edges, gets two lines with an arrow under every source.
func writeConnectors(sb *strings.Builder, conns []connection) {
	if len(conns) == 0 {
		return
	}
	byTarget := groupBy(conns, toCol, fromCol)
	bySource := groupBy(conns, fromCol, toCol)
	converges := hasFan(byTarget)
	diverges := hasFan(bySource)

	switch {
	case converges && !diverges:
		writeFan(sb, byTarget, conns, fromCol, CornerDownRight, CornerDownLeft, TeeUp, toCol)
	case diverges && !converges:
		writeFan(sb, bySource, conns, fromCol, CornerUpRight, CornerUpLeft, TeeDown, toCol)
	default:
		writeStraight(sb, conns)
	}
}

func hasFan(groups []group) bool {
	for _, g := range groups {
		if len(g.members) > 1 {
			return true
		}
	}
	return false
}

// writeFan draws the three-line form. Line one has a stem at every column
// returned by stem, line two a bar across each group with more than one
// member, line three an arrow at every column returned by arrow.
func writeFan(sb *strings.Builder, groups []group, conns []connection,
	stem func(connection) int, left, right, tee rune, arrow func(connection) int) {
	width := span(conns)

	line := blank(width)
	for _, c := range conns {
		line[stem(c)] = VLine
	}
	writeLine(sb, line)

	line = blank(width)
	for _, g := range groups {
		if len(g.members) <= 1 {
			continue
		}
		lo, hi := slices.Min(g.members), slices.Max(g.members)
		for col := lo; col <= hi; col++ {
			switch {
			case col == lo:
				line[col] = left
			case col == hi:
				line[col] = right
			case slices.Contains(g.members, col):
				line[col] = tee
			case line[col] == ' ':
				line[col] = HLine
			}
		}
	}
	writeLine(sb, line)

	line = blank(width)
	for _, c := range conns {
		line[arrow(c)] = ArrowDown
	}
	writeLine(sb, line)
}

// writeStraight draws the two-line form: a stem and an arrow under every
// source column.
func writeStraight(sb *strings.Builder, conns []connection) {
	width := span(conns)
	line := blank(width)
	for _, c := range conns {
		line[c.from] = VLine
	}
	writeLine(sb, line)
	for _, c := range conns {
		line[c.from] = ArrowDown
	}
	writeLine(sb, line)
}

// span returns the number of columns to draw: from column 0 through the
// rightmost column any connection touches.
func span(conns []connection) int {
	right := 0
	for _, c := range conns {
		right = max(right, c.from, c.to)
	}
	return right + 1
}

func blank(width int) []rune {
	line := make([]rune, width)
	for i := range line {
		line[i] = ' '
	}
	return line
}

func writeLine(sb *strings.Builder, line []rune) {
	for _, r := range line {
		sb.WriteRune(r)
	}
	sb.WriteByte('\n')
}
