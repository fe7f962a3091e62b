package vision

import (
	"image"
	"math"

	"shape-detector/internal/domain/entity"
)

// isConvex проверяет, что все повороты полигона одного знака и полигон обходится ровно один раз.
// Нулевые повороты (коллинеарные вершины) не учитываются.
func isConvex(polygon []entity.Point) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}

	sign := 0
	var winding float64
	for i := 0; i < n; i++ {
		a := polygon[i]
		b := polygon[(i+1)%n]
		c := polygon[(i+2)%n]

		v1x, v1y := b.X-a.X, b.Y-a.Y
		v2x, v2y := c.X-b.X, c.Y-b.Y
		cross := v1x*v2y - v1y*v2x
		winding += math.Atan2(cross, v1x*v2x+v1y*v2y)

		switch {
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	if sign == 0 {
		return false
	}

	// самопересекающийся полигон с поворотами одного знака обходит центр больше одного раза
	return math.Abs(math.Abs(winding)-2*math.Pi) < 1e-6
}

func toImagePoints(pts []entity.Point) []image.Point {
	out := make([]image.Point, len(pts))
	for i, p := range pts {
		out[i] = image.Pt(int(math.Round(p.X)), int(math.Round(p.Y)))
	}
	return out
}

func fromImagePoints(pts []image.Point) []entity.Point {
	out := make([]entity.Point, len(pts))
	for i, p := range pts {
		out[i] = entity.Point{X: float64(p.X), Y: float64(p.Y)}
	}
	return out
}
