package storage

import (
	"context"
	"sync"

	"shape-detector/internal/domain/entity"
	"shape-detector/internal/domain/port"
)

// DefaultCapacity используется, если ёмкость хранилища не задана.
const DefaultCapacity = 100

// MemoryResultRepository in-memory хранилище последних результатов детекции
type MemoryResultRepository struct {
	mu       sync.RWMutex
	capacity int
	results  map[string]*entity.DetectionResult
	order    []string // ID в порядке сохранения, старые первыми
}

// NewMemoryResultRepository создаёт хранилище, которое держит не больше capacity прогонов
func NewMemoryResultRepository(capacity int) *MemoryResultRepository {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryResultRepository{
		capacity: capacity,
		results:  make(map[string]*entity.DetectionResult),
	}
}

// Save сохраняет результат и вытесняет самый старый при переполнении
func (r *MemoryResultRepository) Save(ctx context.Context, result *entity.DetectionResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.results[result.ID]; !exists {
		r.order = append(r.order, result.ID)
	}
	r.results[result.ID] = result

	for len(r.order) > r.capacity {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.results, oldest)
	}

	return nil
}

// Get возвращает результат по ID
func (r *MemoryResultRepository) Get(ctx context.Context, id string) (*entity.DetectionResult, error) {
	r.mu.RLock()
	result, exists := r.results[id]
	r.mu.RUnlock()

	if !exists {
		return nil, port.ErrResultNotFound
	}

	return result, nil
}

// List возвращает последние результаты, новые первыми. При limit <= 0 отдаются все.
func (r *MemoryResultRepository) List(ctx context.Context, limit int) ([]*entity.DetectionResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := len(r.order)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]*entity.DetectionResult, 0, n)
	for i := len(r.order) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.results[r.order[i]])
	}

	return out, nil
}

// Проверка реализации интерфейса
var _ port.ResultRepository = (*MemoryResultRepository)(nil)
