package app

import (
	"errors"
	"math"

	"shape-detector/internal/domain/entity"
	"shape-detector/internal/domain/port"
)

type fakeFrame struct {
	width, height int
	closed        *int
}

func (f fakeFrame) Width() int  { return f.width }
func (f fakeFrame) Height() int { return f.height }
func (f fakeFrame) Close() error {
	*f.closed++
	return nil
}

// fakeBackend отдаёт заранее заданные контуры и считает геометрию по вершинам.
type fakeBackend struct {
	width, height int
	contours      [][]entity.Point
	decodeErr     error
	convex        bool
	closed        int
	epsilons      []float64
}

func (b *fakeBackend) frame() port.Frame {
	return fakeFrame{width: b.width, height: b.height, closed: &b.closed}
}

func (b *fakeBackend) Decode(imageData []byte) (port.Frame, error) {
	if b.decodeErr != nil {
		return nil, b.decodeErr
	}
	if len(imageData) == 0 {
		return nil, errors.New("empty image")
	}
	return b.frame(), nil
}

func (b *fakeBackend) Grayscale(port.Frame) (port.Frame, error)  { return b.frame(), nil }
func (b *fakeBackend) Denoise(port.Frame) (port.Frame, error)    { return b.frame(), nil }
func (b *fakeBackend) EdgeDetect(port.Frame) (port.Frame, error) { return b.frame(), nil }

func (b *fakeBackend) FindContours(port.Frame) ([][]entity.Point, error) {
	return b.contours, nil
}

func (b *fakeBackend) ApproxPolygon(curve []entity.Point, epsilon float64, closed bool) []entity.Point {
	b.epsilons = append(b.epsilons, epsilon)
	return curve
}

func (b *fakeBackend) ArcLength(curve []entity.Point, closed bool) float64 {
	var length float64
	for i := range curve {
		if i == len(curve)-1 && !closed {
			break
		}
		p, q := curve[i], curve[(i+1)%len(curve)]
		length += math.Hypot(q.X-p.X, q.Y-p.Y)
	}
	return length
}

func (b *fakeBackend) ContourArea(contour []entity.Point) float64 {
	return math.Abs(b.Moments(contour).M00)
}

func (b *fakeBackend) BoundingRect(contour []entity.Point) entity.BoundingBox {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range contour {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return entity.BoundingBox{X: int(minX), Y: int(minY), Width: int(maxX-minX) + 1, Height: int(maxY-minY) + 1}
}

// MinEnclosingCircle приближённо: центр вершин и максимальное расстояние до него.
func (b *fakeBackend) MinEnclosingCircle(contour []entity.Point) entity.Circle {
	var cx, cy float64
	for _, p := range contour {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(contour))
	cy /= float64(len(contour))

	var r float64
	for _, p := range contour {
		r = math.Max(r, math.Hypot(p.X-cx, p.Y-cy))
	}
	return entity.Circle{Center: entity.Point{X: cx, Y: cy}, Radius: r}
}

func (b *fakeBackend) Moments(contour []entity.Point) entity.Moments {
	var m entity.Moments
	n := len(contour)
	for i := 0; i < n; i++ {
		p, q := contour[i], contour[(i+1)%n]
		cross := p.X*q.Y - q.X*p.Y
		m.M00 += cross / 2
		m.M10 += (p.X + q.X) * cross / 6
		m.M01 += (p.Y + q.Y) * cross / 6
	}
	return m
}

func (b *fakeBackend) IsConvex([]entity.Point) bool { return b.convex }

var _ port.VisionBackend = (*fakeBackend)(nil)
