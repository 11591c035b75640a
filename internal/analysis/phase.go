package analysis

import (
	"github.com/san-kum/atlas/internal/dynamo"
	"github.com/san-kum/atlas/internal/orbit"
)

// PhasePortraitToASCII plots planar points (Hénon, Ikeda, Lorenz
// projections, cobweb vertices) on a width x height character grid.
// Non-finite points are skipped.
func PhasePortraitToASCII(points []orbit.Point, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	first := -1
	for i, p := range points {
		if finite(p.X) && finite(p.Y) {
			first = i
			break
		}
	}
	if first < 0 {
		return ""
	}

	// Find bounds
	minX, maxX := points[first].X, points[first].X
	minY, maxY := points[first].Y, points[first].Y

	for _, p := range points[first:] {
		if !finite(p.X) || !finite(p.Y) {
			continue
		}
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	canvas := newCanvas(width, height)

	// Draw axes if they cross the visible area
	if minX <= 0 && maxX >= 0 {
		col := int((0 - minX) / rangeX * float64(width-1))
		for row := 0; row < height; row++ {
			if col >= 0 && col < width {
				canvas[row][col] = '│'
			}
		}
	}
	if minY <= 0 && maxY >= 0 {
		row := height - 1 - int((0-minY)/rangeY*float64(height-1))
		for col := 0; col < width; col++ {
			if row >= 0 && row < height {
				canvas[row][col] = '─'
			}
		}
	}

	for _, p := range points[first:] {
		if !finite(p.X) || !finite(p.Y) {
			continue
		}
		col := int((p.X - minX) / rangeX * float64(width-1))
		row := height - 1 - int((p.Y-minY)/rangeY*float64(height-1))

		if row >= 0 && row < height && col >= 0 && col < width {
			canvas[row][col] = '•'
		}
	}

	return canvasString(canvas)
}

// Project drops a continuous trajectory onto two of its coordinates.
func Project(states []dynamo.State, xIdx, yIdx int) []orbit.Point {
	pts := make([]orbit.Point, 0, len(states))
	for _, s := range states {
		if xIdx < len(s) && yIdx < len(s) {
			pts = append(pts, orbit.Point{X: s[xIdx], Y: s[yIdx]})
		}
	}
	return pts
}
