// Package coords maps between logical plane coordinates and drawing-surface pixels.
package coords

// ToPixelX linearly maps a logical x onto [pixelMin, pixelMax].
// Callers must ensure logicalMax != logicalMin. Out-of-range inputs map outside the range.
func ToPixelX(x, logicalMin, logicalMax, pixelMin, pixelMax float64) float64 {
	return pixelMin + (x-logicalMin)*(pixelMax-pixelMin)/(logicalMax-logicalMin)
}

// ToPixelY maps a logical y onto [pixelMin, pixelMax] with the axis inverted,
// so logicalMax lands on pixelMin.
func ToPixelY(y, logicalMin, logicalMax, pixelMin, pixelMax float64) float64 {
	return pixelMax - (y-logicalMin)*(pixelMax-pixelMin)/(logicalMax-logicalMin)
}

// FromPixelX inverts ToPixelX. Callers must ensure pixelMax != pixelMin.
func FromPixelX(px, logicalMin, logicalMax, pixelMin, pixelMax float64) float64 {
	return logicalMin + (px-pixelMin)*(logicalMax-logicalMin)/(pixelMax-pixelMin)
}

// FromPixelY inverts ToPixelY.
func FromPixelY(py, logicalMin, logicalMax, pixelMin, pixelMax float64) float64 {
	return logicalMin + (pixelMax-py)*(logicalMax-logicalMin)/(pixelMax-pixelMin)
}

// Viewport binds a square logical range to a drawing surface with a uniform margin.
// Width and Height are the coordinates of the last addressable pixel on each axis,
// so the drawable area spans [Margin, Width-Margin] x [Margin, Height-Margin].
type Viewport struct {
	Min    float64
	Max    float64
	Width  float64
	Height float64
	Margin float64
}

// X maps a logical x to a pixel column.
func (v Viewport) X(x float64) float64 {
	return ToPixelX(x, v.Min, v.Max, v.Margin, v.Width-v.Margin)
}

// Y maps a logical y to a pixel row.
func (v Viewport) Y(y float64) float64 {
	return ToPixelY(y, v.Min, v.Max, v.Margin, v.Height-v.Margin)
}

// LogicalX maps a pixel column back to logical space.
func (v Viewport) LogicalX(px float64) float64 {
	return FromPixelX(px, v.Min, v.Max, v.Margin, v.Width-v.Margin)
}

// LogicalY maps a pixel row back to logical space.
func (v Viewport) LogicalY(py float64) float64 {
	return FromPixelY(py, v.Min, v.Max, v.Margin, v.Height-v.Margin)
}

// Inside reports whether a pixel lies within the drawable area.
func (v Viewport) Inside(px, py float64) bool {
	return px >= v.Margin && px <= v.Width-v.Margin && py >= v.Margin && py <= v.Height-v.Margin
}

// Drawable reports whether the margin leaves any area to draw in.
func (v Viewport) Drawable() bool {
	return v.Max != v.Min && v.Width-2*v.Margin > 0 && v.Height-2*v.Margin > 0
}
