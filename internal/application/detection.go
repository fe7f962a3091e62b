package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"shape-detector/internal/domain/classifier"
	"shape-detector/internal/domain/entity"
	"shape-detector/internal/domain/port"
)

// approxTolerance задаёт допуск аппроксимации полигона как долю периметра контура.
const approxTolerance = 0.04

type DetectionService struct {
	backend    port.VisionBackend
	normalizer port.ImageNormalizer
	classifier *classifier.Classifier
	results    port.ResultRepository
	metrics    *Metrics
	log        *logrus.Logger
}

// NewDetectionService создаёт сервис детекции. Бэкенд может быть nil:
// тогда каждый прогон завершается ошибкой port.ErrBackendUnavailable.
func NewDetectionService(
	backend port.VisionBackend,
	normalizer port.ImageNormalizer,
	cls *classifier.Classifier,
	results port.ResultRepository,
	metrics *Metrics,
	log *logrus.Logger,
) *DetectionService {
	if cls == nil {
		cls = classifier.New()
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &DetectionService{
		backend:    backend,
		normalizer: normalizer,
		classifier: cls,
		results:    results,
		metrics:    metrics,
		log:        log,
	}
}

// Metrics возвращает счётчики сервиса.
func (s *DetectionService) Metrics() *Metrics {
	return s.metrics
}

// Detect извлекает контуры из изображения и классифицирует каждый из них.
// Контур без категории просто не попадает в результат.
func (s *DetectionService) Detect(ctx context.Context, imageData []byte) (*entity.DetectionResult, error) {
	if s.backend == nil {
		s.metrics.IncrementFailures()
		return nil, port.ErrBackendUnavailable
	}
	if err := ctx.Err(); err != nil {
		s.metrics.IncrementFailures()
		return nil, err
	}

	if s.normalizer != nil {
		normalized, err := s.normalizer.Normalize(imageData)
		if err != nil {
			s.metrics.IncrementFailures()
			return nil, fmt.Errorf("normalize image: %w", err)
		}
		imageData = normalized
	}

	start := time.Now()
	contours, width, height, err := s.extract(ctx, imageData)
	if err != nil {
		s.metrics.IncrementFailures()
		return nil, err
	}

	shapes := make([]entity.DetectedShape, 0, len(contours))
	for i, c := range contours {
		shape, ok := s.classifier.Classify(c)
		if !ok {
			s.log.WithFields(logrus.Fields{
				"contour":  i,
				"vertices": c.Vertices(),
				"area":     c.Area,
			}).Debug("contour skipped")
			continue
		}
		shapes = append(shapes, shape)
	}
	elapsed := time.Since(start)

	result := &entity.DetectionResult{
		ID:             uuid.NewString(),
		Shapes:         shapes,
		ProcessingTime: elapsed,
		ImageWidth:     width,
		ImageHeight:    height,
		CreatedAt:      time.Now().UTC(),
	}

	if s.results != nil {
		if err := s.results.Save(ctx, result); err != nil {
			s.log.WithError(err).WithField("id", result.ID).Warn("failed to save detection result")
		}
	}
	s.metrics.RecordRun(elapsed, shapes)

	s.log.WithFields(logrus.Fields{
		"id":       result.ID,
		"contours": len(contours),
		"shapes":   len(shapes),
		"width":    width,
		"height":   height,
		"took_ms":  elapsed.Milliseconds(),
	}).Info("detection finished")

	return result, nil
}

// Result возвращает сохранённый прогон.
func (s *DetectionService) Result(ctx context.Context, id string) (*entity.DetectionResult, error) {
	if s.results == nil {
		return nil, port.ErrResultNotFound
	}
	return s.results.Get(ctx, id)
}

// Recent возвращает последние прогоны.
func (s *DetectionService) Recent(ctx context.Context, limit int) ([]*entity.DetectionResult, error) {
	if s.results == nil {
		return []*entity.DetectionResult{}, nil
	}
	return s.results.List(ctx, limit)
}

// extract прогоняет изображение через бэкенд: серый, шумоподавление, границы, внешние контуры.
func (s *DetectionService) extract(ctx context.Context, imageData []byte) ([]entity.Contour, int, int, error) {
	frame, err := s.backend.Decode(imageData)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("decode image: %w", err)
	}
	defer frame.Close()

	gray, err := s.backend.Grayscale(frame)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("grayscale: %w", err)
	}
	defer gray.Close()

	denoised, err := s.backend.Denoise(gray)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("denoise: %w", err)
	}
	defer denoised.Close()

	edges, err := s.backend.EdgeDetect(denoised)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("edge detect: %w", err)
	}
	defer edges.Close()

	raw, err := s.backend.FindContours(edges)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("find contours: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, 0, 0, err
	}

	contours := make([]entity.Contour, 0, len(raw))
	for _, points := range raw {
		contours = append(contours, s.describe(points))
	}
	return contours, frame.Width(), frame.Height(), nil
}

// describe собирает признаки одного контура. Выпуклость считается по аппроксимации,
// остальное по исходным точкам.
func (s *DetectionService) describe(points []entity.Point) entity.Contour {
	perimeter := s.backend.ArcLength(points, true)
	approx := s.backend.ApproxPolygon(points, approxTolerance*perimeter, true)
	return entity.Contour{
		Approx:      approx,
		Area:        s.backend.ContourArea(points),
		BoundingBox: s.backend.BoundingRect(points),
		Convex:      s.backend.IsConvex(approx),
		Enclosing:   s.backend.MinEnclosingCircle(points),
		Moments:     s.backend.Moments(points),
	}
}

// Проверка реализации интерфейса
var _ port.ShapeDetector = (*DetectionService)(nil)
