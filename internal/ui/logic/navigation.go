package logic

// GridNavigator moves a selection around a listing laid out row by row in a fixed number of columns
type GridNavigator struct {
	columns int
}

// NewGridNavigator creates a navigator for the given column count
func NewGridNavigator(columns int) *GridNavigator {
	return &GridNavigator{columns: max(columns, 1)}
}

// SetColumns changes the grid width
func (n *GridNavigator) SetColumns(columns int) {
	n.columns = max(columns, 1)
}

// Columns returns the grid width
func (n *GridNavigator) Columns() int {
	return n.columns
}

// Row returns the grid row of index
func (n *GridNavigator) Row(index int) int {
	if index < 0 {
		return 0
	}
	return index / n.columns
}

// Rows returns the number of rows needed for total items
func (n *GridNavigator) Rows(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + n.columns - 1) / n.columns
}

// Move returns the index reached from index by moving in direction.
// pageRows is the number of rows a page move jumps.
func (n *GridNavigator) Move(index, total int, direction string, pageRows int) int {
	if total <= 0 {
		return 0
	}
	last := total - 1
	if index > last {
		index = last
	}
	if index < 0 {
		index = 0
	}
	pageRows = max(pageRows, 1)

	switch direction {
	case "left":
		if index > 0 {
			index--
		}
	case "right":
		if index < last {
			index++
		}
	case "up":
		if index-n.columns >= 0 {
			index -= n.columns
		}
	case "down":
		if index+n.columns <= last {
			index += n.columns
		} else if n.Row(index) < n.Row(last) {
			// Partial last row: land on its final card
			index = last
		}
	case "pageup":
		col := index % n.columns
		index -= pageRows * n.columns
		if index < 0 {
			// Stay in the same column on the first row
			index = col
		}
	case "pagedown":
		index += pageRows * n.columns
		if index > last {
			index = last
		}
	case "home":
		index = 0
	case "end":
		index = last
	}
	return index
}

// EnsureVisible returns the viewport offset (in rows) that keeps index on screen
func (n *GridNavigator) EnsureVisible(index, offset, visibleRows int) int {
	visibleRows = max(visibleRows, 1)
	row := n.Row(index)
	if row < offset {
		return row
	}
	if row >= offset+visibleRows {
		return row - visibleRows + 1
	}
	return max(offset, 0)
}
