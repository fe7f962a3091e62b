package port

import (
	"context"

	"shape-detector/internal/domain/entity"
)

// ShapeDetector интерфейс детектора фигур, которым пользуются транспорты
type ShapeDetector interface {
	// Detect извлекает контуры из изображения и возвращает классифицированные фигуры
	Detect(ctx context.Context, imageData []byte) (*entity.DetectionResult, error)

	// Result возвращает сохранённый результат прогона
	Result(ctx context.Context, id string) (*entity.DetectionResult, error)

	// Recent возвращает последние прогоны, новые первыми
	Recent(ctx context.Context, limit int) ([]*entity.DetectionResult, error)
}
