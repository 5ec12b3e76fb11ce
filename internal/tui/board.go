package tui

import (
	"strings"

	"github.com/Mr-Dark-debug/polaroid/internal/layout"
	"github.com/Mr-Dark-debug/polaroid/internal/motion"
	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// Board dimensions (cells)
// ────────────────────────────────────────────────────────────

const (
	picCols = 20
	picRows = 10

	// paper: 1 cell margin around the picture, caption strip below
	paperW = picCols + 2
	paperH = 1 + picRows + 3

	// border drawn (or hidden) around the paper
	cardW = paperW + 2
	cardH = paperH + 2

	colW = cardW + 6

	// topRows is the bare string above the first card.
	topRows = 2
	// slideRows is the room left under a string for the entrance slide.
	slideRows = 3
	gridGap   = 1

	// pxPerRow converts layout pixels into terminal rows.
	pxPerRow = 8
	// spacingPx keeps cards on one string two rows apart.
	spacingPx = (cardH + 2) * pxPerRow

	// degPerCol is how many degrees of tilt shift a card one column.
	degPerCol = 2.5
)

// ────────────────────────────────────────────────────────────
// Geometry
// ────────────────────────────────────────────────────────────

// cardGeom is a card's resting position in board coordinates.
type cardGeom struct {
	index    int // into Model.photos
	position int // on its string
	x, y     int
}

// stringGeom is one string column.
type stringGeom struct {
	group  int
	x, y   int
	height int
	cards  []cardGeom
}

// gridRow is a row of string columns sharing a top edge.
type gridRow struct {
	y, height int
	strings   []int // into boardGeom.strings
}

type boardGeom struct {
	cols       int
	marginLeft int
	height     int
	strings    []stringGeom
	rows       []gridRow
}

// columnsFor picks how many strings fit side by side.
func columnsFor(width int) int {
	return layout.Columns(width, 2*colW, 3*colW)
}

// layoutBoard positions every string and card for a terminal width.
func layoutBoard(placements []layout.Placement, width int) boardGeom {
	g := boardGeom{cols: columnsFor(width)}
	g.marginLeft = max(0, (width-g.cols*colW)/2)

	byGroup := map[int][]layout.Placement{}
	groups := 0
	for _, pl := range placements {
		byGroup[pl.Group] = append(byGroup[pl.Group], pl)
		groups = max(groups, pl.Group+1)
	}

	y := 0
	for first := 0; first < groups; first += g.cols {
		row := gridRow{y: y}
		for gi := first; gi < min(first+g.cols, groups); gi++ {
			sg := stringGeom{group: gi, x: (gi - first) * colW, y: y}
			for _, pl := range byGroup[gi] {
				cy := topRows + pl.OffsetPx/pxPerRow
				sg.cards = append(sg.cards, cardGeom{
					index:    pl.Photo.ID - 1,
					position: pl.Position,
					x:        cardLeft(float64(pl.Photo.RotationDegrees)),
					y:        cy,
				})
				sg.height = cy + cardH + slideRows
			}
			row.height = max(row.height, sg.height)
			row.strings = append(row.strings, len(g.strings))
			g.strings = append(g.strings, sg)
		}
		g.rows = append(g.rows, row)
		y += row.height + gridGap
	}
	g.height = max(0, y-gridGap)
	return g
}

// tiltShift turns a rotation into a horizontal offset in columns.
func tiltShift(deg float64) int {
	return round(deg / degPerCol)
}

// cardLeft is a card's first column within its string at the given tilt.
func cardLeft(tilt float64) int {
	return clamp((colW-cardW)/2+tiltShift(tilt), 0, colW-cardW)
}

// hit returns the photo index under board coordinates (x, y). Cards are
// tested where they are drawn: at their current hover tilt when hover has
// an entry for them, else at rest.
func (g boardGeom) hit(x, y int, hover []motion.Hover) (int, bool) {
	x -= g.marginLeft
	for _, sg := range g.strings {
		for _, c := range sg.cards {
			left := c.x
			if c.index < len(hover) {
				left = cardLeft(hover[c.index].Tilt())
			}
			cx, cy := sg.x+left, sg.y+c.y
			if x >= cx && x < cx+cardW && y >= cy && y < cy+cardH {
				return c.index, true
			}
		}
	}
	return 0, false
}

// cardRect returns the board rows [top, bottom) of a photo's card.
func (g boardGeom) cardRect(index int) (top, bottom int, ok bool) {
	for _, sg := range g.strings {
		for _, c := range sg.cards {
			if c.index == index {
				return sg.y + c.y, sg.y + c.y + cardH, true
			}
		}
	}
	return 0, 0, false
}

// locate returns the string and position of a photo index.
func (g boardGeom) locate(index int) (str, pos int, ok bool) {
	for si, sg := range g.strings {
		for _, c := range sg.cards {
			if c.index == index {
				return si, c.position, true
			}
		}
	}
	return 0, 0, false
}

// ────────────────────────────────────────────────────────────
// Rendering
// ────────────────────────────────────────────────────────────

// renderBoard draws the board rows in [from, to). Rows outside the range
// are left empty so the viewport keeps the full scroll height.
func renderBoard(m *Model, from, to int) string {
	g := m.geom
	lines := make([]string, g.height)
	margin := blanks(g.marginLeft)

	for _, row := range g.rows {
		if row.y+row.height <= from || row.y >= to {
			continue
		}

		cols := make([][]string, len(row.strings))
		for i, si := range row.strings {
			cols[i] = renderString(m, g.strings[si], row.height)
		}

		for dy := 0; dy < row.height; dy++ {
			var sb strings.Builder
			sb.WriteString(margin)
			for _, col := range cols {
				sb.WriteString(col[dy])
			}
			lines[row.y+dy] = sb.String()
		}
	}
	return strings.Join(lines, "\n")
}

// renderString draws one string column, height rows tall, colW wide.
func renderString(m *Model, sg stringGeom, height int) []string {
	lines := make([]string, height)
	center := colW / 2

	bulbRows := map[int]bool{}
	for _, b := range layout.Bulbs(m.bulbs, sg.height) {
		bulbRows[b] = true
	}

	// animate-pulse: bulbs breathe between the page colour and full glow.
	glow := motion.Pulse(m.elapsed, 2, 1) - 1
	bulbStyle := lipgloss.NewStyle().Foreground(blend(m.styles.bg, m.styles.bulb, 0.4+0.6*glow))
	line := m.styles.stringLine.Render("│")
	bulb := bulbStyle.Render("●")

	for y := range lines {
		switch {
		case y >= sg.height:
			lines[y] = blanks(colW)
		case bulbRows[y]:
			lines[y] = blanks(center) + bulb + blanks(colW-center-1)
		default:
			lines[y] = blanks(center) + line + blanks(colW-center-1)
		}
	}

	for _, c := range sg.cards {
		opacity, slide := motion.CardEntrance(c.position).At(m.elapsed)
		if opacity <= 0 {
			continue
		}

		hv := m.hover[c.index]
		left := cardLeft(hv.Tilt())
		top := c.y + round(slide/pxPerRow)

		for i, cl := range renderCard(m, c.index, opacity, hv.Lifted()) {
			y := top + i
			if y < 0 || y >= height {
				continue
			}
			lines[y] = blanks(left) + cl + blanks(colW-left-cardW)
		}
	}
	return lines
}
