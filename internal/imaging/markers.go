package imaging

import (
	"image"
)

// minMarkerPixels discards specks such as JPEG ringing.
const minMarkerPixels = 10

// Marker is a connected region of foreground pixels, one disc or one cross
// in a rendered layout.
type Marker struct {
	Bounds image.Rectangle `json:"bounds"`
	Pixels int             `json:"pixels"`
}

// Center returns the centre of the marker's bounding box.
func (m Marker) Center() image.Point {
	return image.Pt((m.Bounds.Min.X+m.Bounds.Max.X)/2, (m.Bounds.Min.Y+m.Bounds.Max.Y)/2)
}

// FindMarkers groups foreground pixels into 8-connected components.
//
// Rendered markers never touch the cell border, so on a layout image each
// component is exactly one non-blank cell. This gives a count that does not
// depend on the decoder's sample positions.
func FindMarkers(img image.Image, p Palette) []Marker {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	fg := make([][]bool, height)
	visited := make([][]bool, height)
	for y := 0; y < height; y++ {
		fg[y] = make([]bool, width)
		visited[y] = make([]bool, width)
		for x := 0; x < width; x++ {
			fg[y][x] = p.isForeground(img.At(x+bounds.Min.X, y+bounds.Min.Y))
		}
	}

	var markers []Marker
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !fg[y][x] || visited[y][x] {
				continue
			}
			m := floodFill(fg, visited, x, y)
			if m.Pixels >= minMarkerPixels {
				m.Bounds = m.Bounds.Add(bounds.Min)
				markers = append(markers, m)
			}
		}
	}
	return markers
}

// floodFill marks the component containing (startX, startY) as visited and
// returns its size and bounding box. Stack based, 8-connected.
func floodFill(fg, visited [][]bool, startX, startY int) Marker {
	height, width := len(fg), len(fg[0])
	m := Marker{Bounds: image.Rect(startX, startY, startX+1, startY+1)}
	stack := []image.Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		pt := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if pt.X < 0 || pt.X >= width || pt.Y < 0 || pt.Y >= height {
			continue
		}
		if visited[pt.Y][pt.X] || !fg[pt.Y][pt.X] {
			continue
		}

		visited[pt.Y][pt.X] = true
		m.Pixels++
		m.Bounds = m.Bounds.Union(image.Rect(pt.X, pt.Y, pt.X+1, pt.Y+1))

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: pt.X + dx, Y: pt.Y + dy})
			}
		}
	}
	return m
}
