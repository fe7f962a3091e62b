package port

import (
	"shape-detector/internal/domain/entity"
)

// Frame представляет непрозрачный дескриптор изображения внутри бэкенда.
// Каждый полученный Frame нужно закрыть.
type Frame interface {
	Width() int
	Height() int
	Close() error
}

// VisionBackend набор примитивов компьютерного зрения для извлечения контуров.
// Бэкенд передаётся явно, глобального состояния нет.
type VisionBackend interface {
	// Decode превращает байты изображения в цветной кадр
	Decode(imageData []byte) (Frame, error)

	// Grayscale переводит кадр в оттенки серого
	Grayscale(src Frame) (Frame, error)

	// Denoise подавляет шум с сохранением границ
	Denoise(src Frame) (Frame, error)

	// EdgeDetect строит карту границ
	EdgeDetect(src Frame) (Frame, error)

	// FindContours возвращает внешние контуры карты границ
	FindContours(edges Frame) ([][]entity.Point, error)

	// ApproxPolygon упрощает кривую с допуском epsilon
	ApproxPolygon(curve []entity.Point, epsilon float64, closed bool) []entity.Point

	// ArcLength возвращает длину кривой
	ArcLength(curve []entity.Point, closed bool) float64

	// ContourArea возвращает площадь контура
	ContourArea(contour []entity.Point) float64

	// BoundingRect возвращает ограничивающий прямоугольник
	BoundingRect(contour []entity.Point) entity.BoundingBox

	// MinEnclosingCircle возвращает минимальную описанную окружность
	MinEnclosingCircle(contour []entity.Point) entity.Circle

	// Moments возвращает моменты контура
	Moments(contour []entity.Point) entity.Moments

	// IsConvex проверяет выпуклость полигона
	IsConvex(polygon []entity.Point) bool
}

// ImageNormalizer приводит входное изображение к виду, удобному для бэкенда
type ImageNormalizer interface {
	Normalize(imageData []byte) ([]byte, error)
}
