package entity

import "math"

// Point представляет точку на изображении в пикселях.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoundingBox представляет ограничивающий прямоугольник, выровненный по осям.
type BoundingBox struct {
	X      int `json:"x"`      // координата X левого верхнего угла
	Y      int `json:"y"`      // координата Y левого верхнего угла
	Width  int `json:"width"`  // ширина в пикселях
	Height int `json:"height"` // высота в пикселях
}

// Circle описывает минимальную описанную окружность контура.
type Circle struct {
	Center Point   `json:"center"`
	Radius float64 `json:"radius"`
}

// Area возвращает площадь окружности.
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}
