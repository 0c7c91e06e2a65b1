package dag

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Bracket glyphs for the two node forms.
const (
	OpenLabel        = '['
	CloseLabel       = ']'
	OpenPlaceholder  = '⟨'
	ClosePlaceholder = '⟩'
)

// nodeWidth is the rendered width in runes: two brackets plus the label, or
// plus the decimal ID for placeholders.
func nodeWidth(id uint, label string, auto bool) int {
	if auto || label == "" {
		return 2 + countDigits(id)
	}
	return 2 + utf8.RuneCountInString(label)
}

func countDigits(n uint) int {
	digits := 1
	for n >= 10 {
		n /= 10
		digits++
	}
	return digits
}

// WriteNode appends the display form of the node at idx to sb: [label] for
// regular nodes, ⟨id⟩ for placeholders and nodes with an empty label.
func (d *DAG) WriteNode(sb *strings.Builder, idx int) {
	n := d.nodes[idx]
	if n.Label == "" || d.IsAutoCreated(n.ID) {
		sb.WriteRune(OpenPlaceholder)
		sb.WriteString(strconv.FormatUint(uint64(n.ID), 10))
		sb.WriteRune(ClosePlaceholder)
		return
	}
	sb.WriteByte(OpenLabel)
	sb.WriteString(n.Label)
	sb.WriteByte(CloseLabel)
}

// FormatNode returns the display form of the node with the given ID, or the
// empty string if the ID is unknown.
func (d *DAG) FormatNode(id uint) string {
	idx, ok := d.index[id]
	if !ok {
		return ""
	}
	var sb strings.Builder
	d.WriteNode(&sb, idx)
	return sb.String()
}
