package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/orbitsim/internal/sim"
	"github.com/san-kum/orbitsim/internal/viz"
)

// Palette maps body categories to SVG colors.
var Palette = map[viz.Category]string{
	viz.Heavy:    "#ffffff",
	viz.Negative: "#00ff00",
	viz.Positive: "#ff0000",
}

// CanvasToSVG converts a braille canvas to SVG, one circle per lit dot,
// colored by the owning category of its cell.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.SubWidth()) * scale
	height := float64(canvas.SubHeight()) * scale

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			pattern := int(canvas.Grid[row][col] - 0x2800)
			if pattern <= 0 {
				continue
			}
			fill := Palette[canvas.Owner[row][col]]
			if fill == "" {
				fill = "#888888"
			}

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n", cx, cy, dotRadius, fill)
					}
				}
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// TrajectoriesToSVG draws every body's recorded path and marks its final
// position. Non-finite positions break the path and are left out of the
// bounds. Returns "" when there is nothing to draw.
func TrajectoriesToSVG(frames []sim.Frame, width, height int) string {
	if len(frames) == 0 || len(frames[0].Bodies) == 0 {
		return ""
	}

	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, f := range frames {
		for _, b := range f.Bodies {
			if !b.Pos.IsFinite() {
				continue
			}
			minX, maxX = math.Min(minX, b.Pos.X), math.Max(maxX, b.Pos.X)
			minY, maxY = math.Min(minY, b.Pos.Y), math.Max(maxY, b.Pos.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return ""
	}

	// keep aspect ratio and pad by 10%
	rangeX := maxX - minX
	rangeY := maxY - minY
	span := math.Max(rangeX, rangeY)
	if span == 0 {
		span = 1
	}
	span *= 1.2
	cx, cy := (minX+maxX)/2, (minY+maxY)/2
	minX, minY = cx-span/2, cy-span/2
	size := math.Min(float64(width), float64(height))

	project := func(x, y float64) (float64, float64) {
		return (x - minX) / span * size, (y - minY) / span * size
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	last := frames[len(frames)-1]
	for i := range frames[0].Bodies {
		color := Palette[viz.Classify(frames[0].Bodies[i])]

		var path strings.Builder
		pen := false
		for _, f := range frames {
			if i >= len(f.Bodies) {
				break
			}
			p := f.Bodies[i].Pos
			if !p.IsFinite() {
				pen = false
				continue
			}
			x, y := project(p.X, p.Y)
			if pen {
				fmt.Fprintf(&path, " L%.1f,%.1f", x, y)
			} else {
				fmt.Fprintf(&path, " M%.1f,%.1f", x, y)
				pen = true
			}
		}
		if path.Len() > 0 {
			fmt.Fprintf(&sb, "<path fill=\"none\" stroke=\"%s\" stroke-width=\"1\" stroke-opacity=\"0.6\" d=\"%s\"/>\n", color, strings.TrimSpace(path.String()))
		}

		if i < len(last.Bodies) && last.Bodies[i].Pos.IsFinite() {
			x, y := project(last.Bodies[i].Pos.X, last.Bodies[i].Pos.Y)
			fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"3\" fill=\"%s\"/>\n", x, y, color)
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}
