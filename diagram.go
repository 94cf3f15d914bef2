package reduct

import (
	"fmt"
	"strings"
)

// Diagram represents a term as a 2D grid in the style of Tromp's lambda
// diagrams (https://tromp.github.io/cl/diagrams.html): abstractions are
// horizontal lines, variable occurrences are vertical lines running down
// from the row below the innermost enclosing abstraction (not from their
// own binder), applications link their operands.
type Diagram struct {
	Grid   [][]rune
	Width  int
	Height int
}

// NewDiagram creates an empty diagram with the given dimensions.
func NewDiagram(width, height int) *Diagram {
	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}
	return &Diagram{
		Grid:   grid,
		Width:  width,
		Height: height,
	}
}

// Set sets a character at the given position.
func (d *Diagram) Set(row, col int, ch rune) {
	if row >= 0 && row < d.Height && col >= 0 && col < d.Width {
		d.Grid[row][col] = ch
	}
}

// Get gets a character at the given position.
func (d *Diagram) Get(row, col int) rune {
	if row >= 0 && row < d.Height && col >= 0 && col < d.Width {
		return d.Grid[row][col]
	}
	return ' '
}

// ToUnicode renders the diagram with Unicode box drawing characters.
func (d *Diagram) ToUnicode() string {
	var sb strings.Builder
	for i, row := range d.Grid {
		for _, ch := range row {
			sb.WriteRune(ch)
		}
		if i < len(d.Grid)-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// ToSVG renders the diagram as an SVG document.
func (d *Diagram) ToSVG() string {
	const cellWidth = 20
	const cellHeight = 20

	width := d.Width * cellWidth
	height := d.Height * cellHeight

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height))
	sb.WriteString("\n")
	sb.WriteString(`<style>line{stroke:black;stroke-width:2;stroke-linecap:round;}text{font-family:monospace;font-size:14px;}</style>`)
	sb.WriteString("\n")

	for row := 0; row < d.Height; row++ {
		for col := 0; col < d.Width; col++ {
			ch := d.Grid[row][col]
			x := col*cellWidth + cellWidth/2
			y := row*cellHeight + cellHeight/2

			switch ch {
			case '─', '━': // Horizontal line
				x1 := col * cellWidth
				x2 := (col + 1) * cellWidth
				sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d"/>`, x1, y, x2, y))
				sb.WriteString("\n")
			case '│', '┃': // Vertical line
				y1 := row * cellHeight
				y2 := (row + 1) * cellHeight
				sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d"/>`, x, y1, x, y2))
				sb.WriteString("\n")
			case '┌', '┐', '└', '┘', '├', '┤', '┬', '┴', '┼':
				drawCornerSVG(&sb, ch, x, y, cellWidth, cellHeight)
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// drawCornerSVG draws corner and intersection characters as SVG lines.
func drawCornerSVG(sb *strings.Builder, ch rune, x, y, cellWidth, cellHeight int) {
	halfW := cellWidth / 2
	halfH := cellHeight / 2

	line := func(x1, y1, x2, y2 int) {
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="%d" x2="%d" y2="%d"/>`, x1, y1, x2, y2))
		sb.WriteString("\n")
	}

	switch ch {
	case '┌': // Top-left corner
		line(x, y, x+halfW, y)
		line(x, y, x, y+halfH)
	case '┐': // Top-right corner
		line(x-halfW, y, x, y)
		line(x, y, x, y+halfH)
	case '└': // Bottom-left corner
		line(x, y-halfH, x, y)
		line(x, y, x+halfW, y)
	case '┘': // Bottom-right corner
		line(x, y-halfH, x, y)
		line(x-halfW, y, x, y)
	case '├': // Left T
		line(x, y-halfH, x, y+halfH)
		line(x, y, x+halfW, y)
	case '┤': // Right T
		line(x, y-halfH, x, y+halfH)
		line(x-halfW, y, x, y)
	case '┬': // Top T
		line(x-halfW, y, x+halfW, y)
		line(x, y, x, y+halfH)
	case '┴': // Bottom T
		line(x-halfW, y, x+halfW, y)
		line(x, y-halfH, x, y)
	case '┼': // Cross
		line(x-halfW, y, x+halfW, y)
		line(x, y-halfH, x, y+halfH)
	}
}

// diagramContext tracks variable positions during diagram generation.
type diagramContext struct {
	varPositions map[Variable][]int // column positions per variable
	currentDepth int
	currentCol   int
}

// ToDiagram converts a term to a diagram.
func ToDiagram(t Term) *Diagram {
	// First pass: calculate dimensions, with padding.
	width, height := t.dimensions(0)
	width += 2
	height += 2

	diagram := NewDiagram(width, height)
	ctx := &diagramContext{
		varPositions: make(map[Variable][]int),
		currentDepth: 1,
		currentCol:   1,
	}

	// Second pass: draw.
	t.draw(diagram, ctx, 1)

	return diagram
}

func (v Var) dimensions(depth int) (width, height int) {
	return 2, depth + 1
}

func (a Abstraction) dimensions(depth int) (width, height int) {
	w, h := a.Body.dimensions(depth + 1)
	return w + 2, max(h, depth+2)
}

func (a Application) dimensions(depth int) (width, height int) {
	w1, h1 := a.Func.dimensions(depth)
	w2, h2 := a.Arg.dimensions(depth)
	return w1 + w2 + 2, max(h1, h2)
}

func (v Var) draw(d *Diagram, ctx *diagramContext, row int) int {
	// A variable is a vertical line from the current row to the bottom.
	col := ctx.currentCol
	ctx.currentCol += 2

	for r := row; r < d.Height-1; r++ {
		d.Set(r, col, '│')
	}

	ctx.varPositions[v.Variable] = append(ctx.varPositions[v.Variable], col)

	return col
}

func (a Abstraction) draw(d *Diagram, ctx *diagramContext, row int) int {
	// An abstraction is a horizontal line over its body.
	startCol := ctx.currentCol

	for c := startCol; c < startCol+4 && c < d.Width; c++ {
		d.Set(row, c, '─')
	}

	ctx.currentCol = startCol + 1
	ctx.currentDepth++

	a.Body.draw(d, ctx, row+1)

	ctx.currentDepth--

	return startCol
}

func (a Application) draw(d *Diagram, ctx *diagramContext, row int) int {
	funcCol := a.Func.draw(d, ctx, row)
	argCol := a.Arg.draw(d, ctx, row)

	// Link the operands.
	if funcCol < argCol {
		for c := funcCol; c <= argCol; c++ {
			if d.Get(row, c) == ' ' {
				d.Set(row, c, '─')
			}
		}
	}

	return funcCol
}
