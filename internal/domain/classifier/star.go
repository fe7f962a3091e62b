package classifier

import (
	"math"

	"shape-detector/internal/domain/entity"
)

const (
	starVertices = 10
	starPoints   = starVertices / 2
	// starSplitAngle делит углы на острые (лучи) и тупые (впадины). Угол ровно 120° не попадает никуда.
	starSplitAngle = 120.0
	// maxStarStdDev ограничивает стандартное отклонение углов внутри каждой группы.
	maxStarStdDev = 30.0
)

// turnAngles считает угол поворота в каждой вершине замкнутого полигона, в градусах [0, 360).
// Для вершины p2 с соседями p1 и p3: atan2(p3-p2) - atan2(p1-p2).
func turnAngles(pts []entity.Point) []float64 {
	n := len(pts)
	angles := make([]float64, n)
	for j := 0; j < n; j++ {
		p1 := pts[(j-1+n)%n]
		p2 := pts[j]
		p3 := pts[(j+1)%n]

		rad := math.Atan2(p3.Y-p2.Y, p3.X-p2.X) - math.Atan2(p1.Y-p2.Y, p1.X-p2.X)
		deg := rad * 180 / math.Pi
		if deg < 0 {
			deg += 360
		}
		angles[j] = deg
	}
	return angles
}

// starConfidence раскладывает углы на пять внутренних и пять внешних и оценивает их разброс.
// Возвращает false, если раскладка не 5/5 или разброс любой группы не меньше maxStarStdDev.
func starConfidence(angles []float64) (float64, bool) {
	var inner, outer [starPoints]float64
	ni, no := 0, 0

	for _, a := range angles {
		switch {
		case a < starSplitAngle:
			if ni == starPoints {
				return 0, false
			}
			inner[ni] = a
			ni++
		case a > starSplitAngle:
			if no == starPoints {
				return 0, false
			}
			outer[no] = a
			no++
		}
	}
	if ni != starPoints || no != starPoints {
		return 0, false
	}

	_, sdInner := meanStdDev(inner[:])
	_, sdOuter := meanStdDev(outer[:])
	if sdInner >= maxStarStdDev || sdOuter >= maxStarStdDev {
		return 0, false
	}

	return 1 - (sdInner+sdOuter)/(2*maxStarStdDev), true
}
