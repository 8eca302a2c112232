package beatem

import (
	"github.com/vovakirdan/tiny-arcade/internal/assets"
	"github.com/vovakirdan/tiny-arcade/internal/core"
	"github.com/vovakirdan/tiny-arcade/internal/oled"
)

// Health bar column bytes.
const (
	barFull  = 0x1F
	barEmpty = 0x19
)

// walkFrame picks the fighter frame from the approach counter.
func walkFrame(counter int) []byte {
	switch counter & 6 {
	case 0:
		return assets.FighterStay.Data
	case 4:
		return assets.FighterWalk1.Data
	default:
		return assets.FighterWalk0.Data
	}
}

// Render draws the current frame. After a phase change everything is
// redrawn; otherwise only the status bar, the scrolled skyline and the
// fighting area are sent.
func (g *Game) Render(d *oled.Display) {
	v := g.view

	switch g.phase {
	case core.PhaseTitle:
		if v.full {
			d.Clear()
			d.SetCursor(skylinePage, titleX)
			d.SendPixels(assets.StartText.Data...)
		}
		return
	case core.PhaseInit:
		return
	}

	if v.full {
		d.Clear()
		d.SetCursor(groundPage, 0)
		d.Fill(assets.Ground, oled.Width)
	}

	g.renderStatus(d)

	if v.skyline {
		d.SetCursor(skylinePage, 0)
		for c := 0; c < oled.Width; c++ {
			d.SendPixel(assets.Skyline[(g.skyline+c)&0x7f])
		}
	}

	lane := g.cfg.Player.Lane
	if v.fighter != nil {
		x := g.cfg.Player.X
		d.SetPageRange(lane, lane)
		d.SetColumnRange(x, x+arenaWidth-1)
		d.Fill(0x00, arenaWidth)

		d.SetColumnRange(x, oled.Width-1)
		d.SendPixels(v.fighter...)

		if v.enemy != nil {
			d.SetColumnRange(v.enemyX, oled.Width-1)
			d.SendPixels(v.enemy...)
		}
	}

	if v.fallSprite != nil {
		d.DrawBlock(lane, v.fallX, v.fallSprite, len(v.fallSprite), 1)
	}
}

// renderStatus draws the health bar top-left and the score top-right.
func (g *Game) renderStatus(d *oled.Display) {
	d.SetCursor(statusPage, 0)
	hp := g.player.Health.Value()
	for i := 0; i < g.player.Health.Max(); i++ {
		if i >= hp {
			d.SendPixel(barEmpty)
		} else {
			d.SendPixel(barFull)
		}
	}

	score := g.player.Score
	d.SetColumnRange(oled.Width-scoreWidth*score.Len(), oled.Width-1)
	for i := score.Len() - 1; i >= 0; i-- {
		d.SendPixels(assets.SmallDigits[score.Digit(i)][:]...)
		d.SendPixel(0x00)
	}
}
