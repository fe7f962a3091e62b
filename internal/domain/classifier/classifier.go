// Package classifier сопоставляет признаки контура с геометрической категорией.
package classifier

import (
	"shape-detector/internal/domain/entity"
)

// Контуры площадью меньше minArea (px²) отбрасываются до любых проверок формы.
const minArea = 100.0

// Classifier применяет упорядоченный набор правил к одному контуру.
// Состояния между вызовами нет, поэтому один экземпляр можно вызывать из нескольких горутин.
type Classifier struct {
	rules []rule
	clamp bool
}

// Option настраивает классификатор.
type Option func(*Classifier)

// WithClampedConfidence ограничивает уверенность отрезком [0, 1].
// По умолчанию уверенность круга может быть чуть больше 1.
func WithClampedConfidence() Option {
	return func(c *Classifier) {
		c.clamp = true
	}
}

// New создаёт классификатор со стандартным порядком правил.
func New(opts ...Option) *Classifier {
	c := &Classifier{rules: defaultRules()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify возвращает фигуру и true, если контур подошёл под одно из правил.
// Отсутствие совпадения считается обычным исходом, а не ошибкой.
func (c *Classifier) Classify(contour entity.Contour) (entity.DetectedShape, bool) {
	// NaN тоже не проходит фильтр
	if !(contour.Area >= minArea) {
		return entity.DetectedShape{}, false
	}

	for _, r := range c.rules {
		shapeType, confidence, ok := r.match(contour)
		if !ok {
			continue
		}

		// Центр из вырожденных моментов не определён, такой контур пропускаем.
		center, ok := contour.Moments.Centroid()
		if !ok {
			return entity.DetectedShape{}, false
		}

		if c.clamp {
			confidence = clamp01(confidence)
		}
		return entity.DetectedShape{
			Type:        shapeType,
			Confidence:  confidence,
			BoundingBox: contour.BoundingBox,
			Center:      center,
			Area:        contour.Area,
		}, true
	}

	return entity.DetectedShape{}, false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
