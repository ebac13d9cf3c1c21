package icons

import (
	"math"

	"github.com/fogleman/gg"
)

// Default renders the built-in artwork. Shadows are the same shapes grown
// by a stroke so they show around the icon's edges.
func Default() Set {
	return Set{
		Speaker:       render(SpeakerWidth, 0, drawSpeaker),
		SpeakerShadow: render(SpeakerWidth, 1.5, drawSpeaker),
		Bar:           render(SlotWidth, 0, drawBar),
		BarShadow:     render(SlotWidth, 1, drawBar),
		Dot:           render(SlotWidth, 0, drawDot),
		DotShadow:     render(SlotWidth, 1, drawDot),
	}
}

func render(width int, grow float64, draw func(dc *gg.Context, grow float64)) Bitmap {
	dc := gg.NewContext(width, Height)
	dc.SetRGBA(1, 1, 1, 1)
	draw(dc, grow)
	return Pack(dc.AsMask())
}

func fill(dc *gg.Context, grow float64) {
	if grow <= 0 {
		dc.Fill()
		return
	}
	dc.FillPreserve()
	dc.SetLineWidth(2 * grow)
	dc.Stroke()
}

func drawSpeaker(dc *gg.Context, grow float64) {
	dc.MoveTo(3, 12)
	dc.LineTo(9, 12)
	dc.LineTo(17, 5)
	dc.LineTo(17, 27)
	dc.LineTo(9, 20)
	dc.LineTo(3, 20)
	dc.ClosePath()
	fill(dc, grow)

	dc.SetLineCapRound()
	dc.SetLineWidth(2 + 2*grow)
	for _, r := range []float64{6, 11} {
		dc.NewSubPath()
		dc.DrawArc(17, 16, r, -math.Pi/4, math.Pi/4)
		dc.Stroke()
	}
}

func drawBar(dc *gg.Context, grow float64) {
	dc.DrawRoundedRectangle(3, 6, 6, 20, 1.5)
	fill(dc, grow)
}

func drawDot(dc *gg.Context, grow float64) {
	dc.DrawCircle(6, 16, 2)
	fill(dc, grow)
}
