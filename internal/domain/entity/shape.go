package entity

// ShapeType категория распознанной фигуры
type ShapeType string

const (
	ShapeCircle    ShapeType = "circle"
	ShapeTriangle  ShapeType = "triangle"
	ShapeRectangle ShapeType = "rectangle"
	ShapePentagon  ShapeType = "pentagon"
	ShapeStar      ShapeType = "star"
)

// ShapeTypes перечисляет все категории в порядке вывода.
var ShapeTypes = []ShapeType{ShapeCircle, ShapeTriangle, ShapeRectangle, ShapePentagon, ShapeStar}

// DetectedShape представляет фигуру, которую удалось классифицировать.
type DetectedShape struct {
	Type        ShapeType   `json:"type"`
	Confidence  float64     `json:"confidence"`
	BoundingBox BoundingBox `json:"bounding_box"`
	Center      Point       `json:"center"`
	Area        float64     `json:"area"`
}
