//go:build gocv
// +build gocv

package vision

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"

	"shape-detector/internal/domain/entity"
	"shape-detector/internal/domain/port"
)

var errForeignFrame = errors.New("frame was not produced by the gocv backend")

// GoCVBackend реализует примитивы компьютерного зрения на OpenCV.
type GoCVBackend struct {
	BilateralDiameter   int
	BilateralSigmaColor float64
	BilateralSigmaSpace float64
	CannyLow            float32
	CannyHigh           float32
}

// NewBackend создаёт бэкенд OpenCV со стандартными порогами.
func NewBackend() (port.VisionBackend, error) {
	return &GoCVBackend{
		BilateralDiameter:   9,
		BilateralSigmaColor: 75,
		BilateralSigmaSpace: 75,
		CannyLow:            50,
		CannyHigh:           150,
	}, nil
}

type matFrame struct {
	mat gocv.Mat
}

func (f *matFrame) Width() int   { return f.mat.Cols() }
func (f *matFrame) Height() int  { return f.mat.Rows() }
func (f *matFrame) Close() error { return f.mat.Close() }

func asMat(f port.Frame) (gocv.Mat, error) {
	mf, ok := f.(*matFrame)
	if !ok || mf == nil {
		return gocv.Mat{}, errForeignFrame
	}
	return mf.mat, nil
}

// Decode превращает байты изображения в gocv.Mat.
func (b *GoCVBackend) Decode(imageData []byte) (port.Frame, error) {
	mat, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err == nil && !mat.Empty() {
		return &matFrame{mat: mat}, nil
	}
	if err == nil {
		mat.Close()
	}
	return nil, fmt.Errorf("%w: failed to decode image", port.ErrInvalidImage)
}

// Grayscale переводит BGR в оттенки серого.
func (b *GoCVBackend) Grayscale(src port.Frame) (port.Frame, error) {
	mat, err := asMat(src)
	if err != nil {
		return nil, err
	}
	gray := gocv.NewMat()
	gocv.CvtColor(mat, &gray, gocv.ColorBGRToGray)
	return &matFrame{mat: gray}, nil
}

// Denoise применяет билатеральный фильтр, границы фигур остаются резкими.
func (b *GoCVBackend) Denoise(src port.Frame) (port.Frame, error) {
	mat, err := asMat(src)
	if err != nil {
		return nil, err
	}
	filtered := gocv.NewMat()
	gocv.BilateralFilter(mat, &filtered, b.BilateralDiameter, b.BilateralSigmaColor, b.BilateralSigmaSpace)
	return &matFrame{mat: filtered}, nil
}

func (b *GoCVBackend) EdgeDetect(src port.Frame) (port.Frame, error) {
	mat, err := asMat(src)
	if err != nil {
		return nil, err
	}
	edges := gocv.NewMat()
	gocv.Canny(mat, &edges, b.CannyLow, b.CannyHigh)
	return &matFrame{mat: edges}, nil
}

// FindContours возвращает только внешние контуры.
func (b *GoCVBackend) FindContours(edges port.Frame) ([][]entity.Point, error) {
	mat, err := asMat(edges)
	if err != nil {
		return nil, err
	}

	contours := gocv.FindContours(mat, gocv.RetrievalExternal, gocv.ChainApproxSimple)
	defer contours.Close()

	out := make([][]entity.Point, 0, contours.Size())
	for _, pts := range contours.ToPoints() {
		out = append(out, fromImagePoints(pts))
	}
	return out, nil
}

func (b *GoCVBackend) ApproxPolygon(curve []entity.Point, epsilon float64, closed bool) []entity.Point {
	pv := gocv.NewPointVectorFromPoints(toImagePoints(curve))
	defer pv.Close()

	approx := gocv.ApproxPolyDP(pv, epsilon, closed)
	defer approx.Close()

	return fromImagePoints(approx.ToPoints())
}

func (b *GoCVBackend) ArcLength(curve []entity.Point, closed bool) float64 {
	pv := gocv.NewPointVectorFromPoints(toImagePoints(curve))
	defer pv.Close()
	return gocv.ArcLength(pv, closed)
}

func (b *GoCVBackend) ContourArea(contour []entity.Point) float64 {
	pv := gocv.NewPointVectorFromPoints(toImagePoints(contour))
	defer pv.Close()
	return gocv.ContourArea(pv)
}

func (b *GoCVBackend) BoundingRect(contour []entity.Point) entity.BoundingBox {
	pv := gocv.NewPointVectorFromPoints(toImagePoints(contour))
	defer pv.Close()

	rect := gocv.BoundingRect(pv)
	return entity.BoundingBox{X: rect.Min.X, Y: rect.Min.Y, Width: rect.Dx(), Height: rect.Dy()}
}

func (b *GoCVBackend) MinEnclosingCircle(contour []entity.Point) entity.Circle {
	pv := gocv.NewPointVectorFromPoints(toImagePoints(contour))
	defer pv.Close()

	x, y, radius := gocv.MinEnclosingCircle(pv)
	return entity.Circle{
		Center: entity.Point{X: float64(x), Y: float64(y)},
		Radius: float64(radius),
	}
}

// Moments считает моменты контура. OpenCV принимает контур как матрицу N×2 CV_32S.
func (b *GoCVBackend) Moments(contour []entity.Point) entity.Moments {
	if len(contour) == 0 {
		return entity.Moments{}
	}

	pts := toImagePoints(contour)
	mat := gocv.NewMatWithSize(len(pts), 2, gocv.MatTypeCV32S)
	defer mat.Close()
	for i, p := range pts {
		mat.SetIntAt(i, 0, int32(p.X))
		mat.SetIntAt(i, 1, int32(p.Y))
	}

	m := gocv.Moments(mat, false)
	return entity.Moments{M00: m["m00"], M10: m["m10"], M01: m["m01"]}
}

func (b *GoCVBackend) IsConvex(polygon []entity.Point) bool {
	return isConvex(polygon)
}

// Проверка реализации интерфейса
var _ port.VisionBackend = (*GoCVBackend)(nil)
