package entity

import (
	"encoding/json"
	"time"
)

// DetectionResult хранит итог одного прогона детекции.
type DetectionResult struct {
	ID             string          // идентификатор прогона
	Shapes         []DetectedShape // фигуры в порядке обнаружения контуров
	ProcessingTime time.Duration   // время извлечения и классификации
	ImageWidth     int             // ширина проанализированного изображения
	ImageHeight    int             // высота проанализированного изображения
	CreatedAt      time.Time
}

// Count возвращает число фигур заданной категории.
func (r *DetectionResult) Count(t ShapeType) int {
	n := 0
	for _, s := range r.Shapes {
		if s.Type == t {
			n++
		}
	}
	return n
}

type detectionResultJSON struct {
	ID               string          `json:"id"`
	Shapes           []DetectedShape `json:"shapes"`
	ProcessingTimeMs float64         `json:"processing_time_ms"`
	ImageWidth       int             `json:"image_width"`
	ImageHeight      int             `json:"image_height"`
	CreatedAt        time.Time       `json:"created_at"`
}

// MarshalJSON отдаёт время обработки в миллисекундах.
func (r DetectionResult) MarshalJSON() ([]byte, error) {
	shapes := r.Shapes
	if shapes == nil {
		shapes = []DetectedShape{}
	}
	return json.Marshal(detectionResultJSON{
		ID:               r.ID,
		Shapes:           shapes,
		ProcessingTimeMs: float64(r.ProcessingTime) / float64(time.Millisecond),
		ImageWidth:       r.ImageWidth,
		ImageHeight:      r.ImageHeight,
		CreatedAt:        r.CreatedAt,
	})
}

// UnmarshalJSON выполняет обратное преобразование для клиентов и тестов.
func (r *DetectionResult) UnmarshalJSON(data []byte) error {
	var raw detectionResultJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = DetectionResult{
		ID:             raw.ID,
		Shapes:         raw.Shapes,
		ProcessingTime: time.Duration(raw.ProcessingTimeMs * float64(time.Millisecond)),
		ImageWidth:     raw.ImageWidth,
		ImageHeight:    raw.ImageHeight,
		CreatedAt:      raw.CreatedAt,
	}
	return nil
}
