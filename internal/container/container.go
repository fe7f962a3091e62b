package container

import (
	"github.com/sirupsen/logrus"

	"shape-detector/config"
	app "shape-detector/internal/application"
	"shape-detector/internal/domain/classifier"
	"shape-detector/internal/domain/port"
	"shape-detector/internal/infrastructure/imaging"
	"shape-detector/internal/infrastructure/storage"
)

type Container struct {
	DetectionService *app.DetectionService
	Results          port.ResultRepository
	Metrics          *app.Metrics
}

// New собирает сервисы приложения. backend может быть nil, если OpenCV недоступен.
func New(cfg *config.Config, backend port.VisionBackend, log *logrus.Logger) *Container {
	var opts []classifier.Option
	if cfg.ClampConfidence {
		opts = append(opts, classifier.WithClampedConfidence())
	}

	results := storage.NewMemoryResultRepository(cfg.ResultHistory)
	metrics := app.NewMetrics()
	detectionService := app.NewDetectionService(
		backend,
		imaging.NewNormalizer(cfg.MaxImageSide),
		classifier.New(opts...),
		results,
		metrics,
		log,
	)

	return &Container{
		DetectionService: detectionService,
		Results:          results,
		Metrics:          metrics,
	}
}
