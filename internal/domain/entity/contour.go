package entity

import "math"

// Moments хранит моменты изображения, нужные для центра масс.
type Moments struct {
	M00 float64
	M10 float64
	M01 float64
}

// Centroid возвращает центр масс (m10/m00, m01/m00).
// Второе значение false, если момент нулевой и центр не определён.
func (m Moments) Centroid() (Point, bool) {
	if m.M00 == 0 {
		return Point{}, false
	}
	p := Point{X: m.M10 / m.M00, Y: m.M01 / m.M00}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return Point{}, false
	}
	return p, true
}

// Contour хранит признаки одного контура, полученные от бэкенда компьютерного зрения.
// Классификатор только читает эти данные.
type Contour struct {
	Approx      []Point     // аппроксимированный полигон (порядок вершин сохранён)
	Area        float64     // площадь исходного контура, px²
	BoundingBox BoundingBox // ограничивающий прямоугольник
	Convex      bool        // выпуклость аппроксимации
	Enclosing   Circle      // минимальная описанная окружность
	Moments     Moments     // моменты для центра масс
}

// Vertices возвращает число вершин аппроксимации.
func (c Contour) Vertices() int {
	return len(c.Approx)
}
