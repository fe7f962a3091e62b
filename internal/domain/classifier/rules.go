package classifier

import (
	"shape-detector/internal/domain/entity"
)

const (
	// polygonConfidence задаёт фиксированную уверенность для треугольника, четырёхугольника и пятиугольника.
	polygonConfidence = 0.85
	// circleAreaRatio задаёт порог отношения площади контура к площади описанной окружности.
	circleAreaRatio = 0.85
)

// rule описывает одно правило классификации. Правила проверяются по порядку, побеждает первое совпавшее.
type rule struct {
	name  string
	match func(c entity.Contour) (entity.ShapeType, float64, bool)
}

// defaultRules задаёт порядок: многоугольники по числу вершин, затем круг, затем звезда.
// Звезда проверяется только если правило круга не сработало.
func defaultRules() []rule {
	return []rule{
		{name: "triangle", match: vertexRule(3, entity.ShapeTriangle)},
		{name: "rectangle", match: vertexRule(4, entity.ShapeRectangle)},
		{name: "pentagon", match: vertexRule(5, entity.ShapePentagon)},
		{name: "circle", match: matchCircle},
		{name: "star", match: matchStar},
	}
}

// vertexRule срабатывает при точном числе вершин аппроксимации.
// Соотношение сторон и углы не проверяются.
func vertexRule(vertices int, shapeType entity.ShapeType) func(entity.Contour) (entity.ShapeType, float64, bool) {
	return func(c entity.Contour) (entity.ShapeType, float64, bool) {
		if c.Vertices() != vertices {
			return "", 0, false
		}
		return shapeType, polygonConfidence, true
	}
}

// matchCircle сравнивает площадь контура с площадью минимальной описанной окружности.
// Уверенность равна этому отношению и не ограничивается сверху.
func matchCircle(c entity.Contour) (entity.ShapeType, float64, bool) {
	if c.Vertices() <= 5 {
		return "", 0, false
	}
	ratio, ok := areaRatio(c)
	if !ok || ratio <= circleAreaRatio {
		return "", 0, false
	}
	return entity.ShapeCircle, ratio, true
}

// areaRatio = area / (π·r²). Для нулевого радиуса отношение не определено.
func areaRatio(c entity.Contour) (float64, bool) {
	circleArea := c.Enclosing.Area()
	if !(circleArea > 0) {
		return 0, false
	}
	return c.Area / circleArea, true
}

// matchStar требует ровно 10 вершин и невыпуклый контур, дальше решает анализ углов.
func matchStar(c entity.Contour) (entity.ShapeType, float64, bool) {
	if c.Vertices() != starVertices || c.Convex {
		return "", 0, false
	}
	confidence, ok := starConfidence(turnAngles(c.Approx))
	if !ok {
		return "", 0, false
	}
	return entity.ShapeStar, confidence, true
}
