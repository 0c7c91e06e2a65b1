package layout

// CanvasDimensions measures every level and the canvas that holds them.
//
// A level's width runs from its leftmost node's x to the right edge of the
// node with the largest x; empty levels have width 0. The canvas width is the
// widest level.
func CanvasDimensions(g Graph, levels [][]int, x []int) (widths []int, canvas int) {
	widths = make([]int, len(levels))
	for l, level := range levels {
		if len(level) == 0 {
			continue
		}
		minX := x[level[0]]
		right := level[0]
		for _, idx := range level[1:] {
			minX = min(minX, x[idx])
			if x[idx] > x[right] {
				right = idx
			}
		}
		widths[l] = x[right] - minX + g.Width(right)
		canvas = max(canvas, widths[l])
	}
	return widths, canvas
}

// CenterOffset returns the left padding that centers a level of the given
// width on a canvas, rounding down.
func CenterOffset(canvas, width int) int {
	if canvas <= width {
		return 0
	}
	return (canvas - width) / 2
}
