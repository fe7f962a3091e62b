package imaging

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/disintegration/imaging"

	"shape-detector/internal/domain/port"
)

// Normalizer поворачивает снимок по EXIF и уменьшает его до MaxSide по большей стороне.
// Пороговая площадь классификатора задана в пикселях, поэтому стабильный размер важен.
type Normalizer struct {
	MaxSide int // при 0 размер не меняется
}

// NewNormalizer создаёт нормализатор с ограничением по большей стороне.
func NewNormalizer(maxSide int) *Normalizer {
	return &Normalizer{MaxSide: maxSide}
}

// Normalize декодирует изображение (JPEG, PNG, GIF, BMP, TIFF) и возвращает PNG.
func (n *Normalizer) Normalize(imageData []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(imageData), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", port.ErrInvalidImage, err)
	}

	b := img.Bounds()
	if n.MaxSide > 0 && (b.Dx() > n.MaxSide || b.Dy() > n.MaxSide) {
		img = imaging.Fit(img, n.MaxSide, n.MaxSide, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// Проверка реализации интерфейса
var _ port.ImageNormalizer = (*Normalizer)(nil)
