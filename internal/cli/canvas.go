package cli

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/gridsnap/pkg/grid"
	"github.com/matzehuels/gridsnap/pkg/layout"
)

// Canvas glyphs.
const (
	glyphRemove = '×'
	glyphResize = '◢'
	glyphGrid   = '·'
)

// cellStyle indexes canvasStyles.
type cellStyle uint8

const (
	cellPlain cellStyle = iota
	cellGrid
	cellUnit
	cellAttached
	cellDragging
	cellLabel
	cellRemove
	cellResize
)

var canvasStyles = map[cellStyle]lipgloss.Style{
	cellGrid:     lipgloss.NewStyle().Foreground(colorDim),
	cellUnit:     lipgloss.NewStyle().Foreground(colorGray),
	cellAttached: lipgloss.NewStyle().Foreground(colorCyan),
	cellDragging: lipgloss.NewStyle().Foreground(colorYellow).Bold(true),
	cellLabel:    lipgloss.NewStyle().Foreground(colorWhite),
	cellRemove:   lipgloss.NewStyle().Foreground(colorRed).Bold(true),
	cellResize:   lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
}

type cell struct {
	r     rune
	style cellStyle
}

// canvasElement is the visual state of one unit.
type canvasElement struct {
	id       string
	rect     grid.Rect
	attached bool
	dragging bool
	seq      int
}

// cellBox is a rectangle in terminal cells.
type cellBox struct {
	col, row, cols, rows int
}

func (b cellBox) contains(col, row int) bool {
	return col >= b.col && col < b.col+b.cols && row >= b.row && row < b.row+b.rows
}

func (b cellBox) right() int  { return b.col + b.cols - 1 }
func (b cellBox) bottom() int { return b.row + b.rows - 1 }

// canvas draws units into terminal cells. It is the editor's renderer and
// surface: the layout manager pushes element state into it, and it hit-tests
// mouse positions against that state. Pixel coordinates map to cells by the
// configured cell size; the container starts top rows below the terminal's
// first row.
type canvas struct {
	cellW, cellH float64
	top          int
	prefix       string
	snap         float64
	showGrid     bool

	elements map[string]*canvasElement
	seq      int
}

func newCanvas(cellW, cellH float64, top int) *canvas {
	return &canvas{
		cellW:    cellW,
		cellH:    cellH,
		top:      top,
		prefix:   layout.DefaultIDPrefix,
		snap:     layout.DefaultSnap,
		elements: make(map[string]*canvasElement),
	}
}

// Create implements layout.Renderer.
func (c *canvas) Create(el layout.Element) {
	c.seq++
	c.elements[el.ID] = &canvasElement{id: el.ID, rect: el.Rect, seq: c.seq}
}

// Attach implements layout.Renderer.
func (c *canvas) Attach(id string) {
	if e := c.elements[id]; e != nil {
		e.attached = true
	}
}

// Detach implements layout.Renderer.
func (c *canvas) Detach(id string) {
	if e := c.elements[id]; e != nil {
		e.attached = false
	}
}

// Destroy implements layout.Renderer.
func (c *canvas) Destroy(id string) { delete(c.elements, id) }

// SetStyles implements layout.Renderer.
func (c *canvas) SetStyles(id string, s layout.Styles) {
	if e := c.elements[id]; e != nil {
		e.rect = s.Rect
		e.dragging = s.Dragging
	}
}

// Offset implements layout.Surface. The container begins below the header.
func (c *canvas) Offset() grid.Point {
	return grid.Point{Y: float64(c.top) * c.cellH}
}

// toPage converts a terminal cell to page pixels.
func (c *canvas) toPage(col, row int) grid.Point {
	return grid.Point{X: float64(col) * c.cellW, Y: float64(row) * c.cellH}
}

// box converts a container-relative rectangle to cells. Boxes are at least
// 2x2 so the remove and resize controls never share a cell.
func (c *canvas) box(r grid.Rect) cellBox {
	b := cellBox{
		col:  int(math.Floor(r.Left / c.cellW)),
		row:  c.top + int(math.Floor(r.Top/c.cellH)),
		cols: int(math.Round(r.Width / c.cellW)),
		rows: int(math.Round(r.Height / c.cellH)),
	}
	b.cols = max(b.cols, 2)
	b.rows = max(b.rows, 2)
	return b
}

// ordered returns the elements bottom to top: creation order, with a
// dragged element raised above the rest.
func (c *canvas) ordered() []*canvasElement {
	els := make([]*canvasElement, 0, len(c.elements))
	for _, e := range c.elements {
		els = append(els, e)
	}
	sort.Slice(els, func(i, j int) bool {
		if els[i].dragging != els[j].dragging {
			return !els[i].dragging
		}
		return els[i].seq < els[j].seq
	})
	return els
}

// hit reports which unit part is under a cell. An empty id means the
// container background.
func (c *canvas) hit(col, row int) (unitID string, part layout.Part) {
	els := c.ordered()
	for i := len(els) - 1; i >= 0; i-- {
		e := els[i]
		b := c.box(e.rect)
		if !b.contains(col, row) {
			continue
		}
		id := strings.TrimPrefix(e.id, c.prefix)
		if e.attached && col == b.right() {
			switch row {
			case b.row:
				return id, layout.PartRemove
			case b.bottom():
				return id, layout.PartResize
			}
		}
		return id, layout.PartBody
	}
	return "", layout.PartContainer
}

// render draws the container area, rows top through top+height-1.
func (c *canvas) render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
		for x := range cells[y] {
			cells[y][x] = cell{r: ' '}
		}
	}

	if c.showGrid {
		c.drawGrid(cells)
	}
	for _, e := range c.ordered() {
		c.drawElement(cells, e)
	}

	var b strings.Builder
	for y, row := range cells {
		if y > 0 {
			b.WriteByte('\n')
		}
		writeRow(&b, row)
	}
	return b.String()
}

func (c *canvas) drawGrid(cells [][]cell) {
	for y := range cells {
		py := float64(y) * c.cellH
		if math.Mod(py, c.snap) != 0 {
			continue
		}
		for x := range cells[y] {
			if math.Mod(float64(x)*c.cellW, c.snap) == 0 {
				cells[y][x] = cell{r: glyphGrid, style: cellGrid}
			}
		}
	}
}

func (c *canvas) drawElement(cells [][]cell, e *canvasElement) {
	b := c.box(e.rect)
	b.row -= c.top

	border := cellUnit
	switch {
	case e.dragging:
		border = cellDragging
	case e.attached:
		border = cellAttached
	}

	set := func(x, y int, r rune, st cellStyle) {
		if y < 0 || y >= len(cells) || x < 0 || x >= len(cells[y]) {
			return
		}
		cells[y][x] = cell{r: r, style: st}
	}

	for y := b.row; y <= b.bottom(); y++ {
		for x := b.col; x <= b.right(); x++ {
			r := ' '
			switch {
			case y == b.row && x == b.col:
				r = '┌'
			case y == b.row && x == b.right():
				r = '┐'
			case y == b.bottom() && x == b.col:
				r = '└'
			case y == b.bottom() && x == b.right():
				r = '┘'
			case y == b.row || y == b.bottom():
				r = '─'
			case x == b.col || x == b.right():
				r = '│'
			}
			set(x, y, r, border)
		}
	}

	inner := b.cols - 2
	if inner > 0 && b.rows > 2 {
		label := truncate(strings.TrimPrefix(e.id, c.prefix), inner)
		for i, r := range []rune(label) {
			set(b.col+1+i, b.row+1, r, cellLabel)
		}
		if b.rows > 3 {
			size := truncate(fmt.Sprintf("%g×%g", e.rect.Width, e.rect.Height), inner)
			for i, r := range []rune(size) {
				set(b.col+1+i, b.row+2, r, border)
			}
		}
	}

	if e.attached {
		set(b.right(), b.row, glyphRemove, cellRemove)
		set(b.right(), b.bottom(), glyphResize, cellResize)
	}
}

// writeRow renders a row of cells, grouping runs that share a style.
func writeRow(b *strings.Builder, row []cell) {
	for start := 0; start < len(row); {
		end := start
		var run []rune
		for end < len(row) && row[end].style == row[start].style {
			run = append(run, row[end].r)
			end++
		}
		if st, ok := canvasStyles[row[start].style]; ok {
			b.WriteString(st.Render(string(run)))
		} else {
			b.WriteString(string(run))
		}
		start = end
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
