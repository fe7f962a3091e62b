package port

import (
	"context"

	"shape-detector/internal/domain/entity"
)

// ResultRepository интерфейс хранилища результатов детекции
type ResultRepository interface {
	// Save сохраняет результат прогона
	Save(ctx context.Context, result *entity.DetectionResult) error

	// Get возвращает результат по ID или ErrResultNotFound
	Get(ctx context.Context, id string) (*entity.DetectionResult, error)

	// List возвращает не больше limit последних результатов
	List(ctx context.Context, limit int) ([]*entity.DetectionResult, error)
}
