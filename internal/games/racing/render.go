package racing

import (
	"github.com/vovakirdan/tiny-arcade/internal/assets"
	"github.com/vovakirdan/tiny-arcade/internal/oled"
)

// Screen layout.
const (
	titlePage  = 3
	titleX     = 58
	horizon    = 0x80
	roadCentre = 64
	linePage   = 2
	leftEdgeX  = 40
	rightEdgeX = 68
	edgeTop    = 1
	edgeBottom = 5
	scorePage  = 7
	scoreX     = 51
	lineTail   = 3 // repeats of the high byte below the low byte
)

var roadLines = assets.RoadLine

// view is what Render has to put on the panel for the current frame.
type view struct {
	title bool
	full  bool
	frame bool
	crash bool

	line int

	erasePage int
	eraseX    int
	eraseLen  int

	barrierLen  int
	barrierBits byte
}

// Render draws the current frame.
func (g *Game) Render(d *oled.Display) {
	v := &g.view

	switch {
	case v.title:
		d.Clear()
		g.at(d, titlePage, titleX)
		d.SendPixels(assets.GoText.Data...)
		return
	case v.full:
		g.renderRoad(d)
		return
	case !v.frame:
		return
	}

	d.SetColumnRange(roadCentre, roadCentre)
	d.SetPageRange(linePage, oled.Pages-1)
	pattern := roadLines[v.line]
	d.SendPixel(byte(pattern))
	for i := 0; i < lineTail; i++ {
		d.SendPixel(byte(pattern >> 8))
	}

	g.at(d, carPage, g.car.X)
	switch {
	case v.crash:
		d.SendPixels(assets.CarCrash.Data...)
		return
	case g.car.X < g.cfg.Car.LeftSide:
		d.SendPixels(assets.CarSide.Data...)
	case g.car.X > g.cfg.Car.RightSide:
		for i := len(assets.CarSide.Data) - 1; i >= 0; i-- {
			d.SendPixel(assets.CarSide.Data[i])
		}
	default:
		d.SendPixels(assets.CarCenter.Data...)
	}

	g.at(d, v.erasePage, v.eraseX)
	d.Fill(0x00, v.eraseLen)

	g.at(d, g.barrierPage, g.barrierX)
	d.Fill(v.barrierBits, v.barrierLen)

	g.renderScore(d)
}

// renderRoad draws the horizon and the two road edges. The page command
// leaves the column pointer alone, so each edge steps sideways one piece
// per page.
func (g *Game) renderRoad(d *oled.Display) {
	d.Clear()
	d.Fill(horizon, oled.Width-1)

	edge := assets.RoadEdge.Data
	d.SetColumnRange(leftEdgeX, oled.Width-1)
	for p := edgeBottom; p >= edgeTop; p-- {
		d.SetPageRange(p, oled.Pages-1)
		for i := len(edge) - 1; i >= 0; i-- {
			d.SendPixel(edge[i])
		}
	}

	d.SetColumnRange(rightEdgeX, oled.Width-1)
	for p := edgeTop; p <= edgeBottom; p++ {
		d.SetPageRange(p, oled.Pages-1)
		d.SendPixels(edge...)
	}
}

// renderScore draws the label and the digits, most significant first.
func (g *Game) renderScore(d *oled.Display) {
	g.at(d, scorePage, scoreX)
	label := assets.ScoreLabel.Data
	for i := len(label) - 1; i >= 0; i-- {
		d.SendPixel(label[i])
	}

	s := g.car.Score
	for i := s.Len() - 1; i >= 0; i-- {
		n := s.Digit(i)
		d.SendPixels(assets.WideDigits[n][0], assets.WideDigits[n][1], 0x00)
	}
}

// at opens a window from (page, x) to the bottom-right corner.
func (g *Game) at(d *oled.Display, page, x int) {
	d.SetPageRange(page, oled.Pages-1)
	d.SetColumnRange(x, oled.Width-1)
}
