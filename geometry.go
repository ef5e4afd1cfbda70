package radial

import "math"

// CirclePoints is pure circular-coordinate math around a fixed center and
// radius. All angles are degrees, counted clockwise with 0 at the top of the
// circle, in the range [0, 360).
type CirclePoints struct {
	Center Point
	Radius float64
}

// AngleFromPoint returns the angle of p relative to the center.
// The exact center is degenerate and deterministically maps to 0.
func (c CirclePoints) AngleFromPoint(p Point) float64 {
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	if dx == 0 && dy == 0 {
		return 0
	}
	// Screen Y grows downward, so "up" is -Y. Swapping atan2 arguments
	// rotates zero to the top and flips to clockwise in one step.
	angle := math.Atan2(dx, -dy) * 180 / math.Pi
	return math.Mod(angle+360, 360)
}

// PointFromAngle returns the point on the circle at the given angle.
func (c CirclePoints) PointFromAngle(angle float64) Point {
	rad := angle * math.Pi / 180
	return Point{
		X: c.Center.X + c.Radius*math.Sin(rad),
		Y: c.Center.Y - c.Radius*math.Cos(rad),
	}
}

// Distance returns the euclidean distance from p to the center.
func (c CirclePoints) Distance(p Point) float64 {
	dx := p.X - c.Center.X
	dy := p.Y - c.Center.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// EvenlySpacedAngles returns n angles spaced 360/n apart starting at 0.
// n <= 0 returns an empty slice.
func EvenlySpacedAngles(n int) []float64 {
	if n <= 0 {
		return nil
	}
	angles := make([]float64, n)
	step := 360.0 / float64(n)
	for i := range angles {
		angles[i] = float64(i) * step
	}
	return angles
}

// AnglesAndPoints returns n evenly spaced angles paired with their points on
// the circle, used to place labels on the ring.
func (c CirclePoints) AnglesAndPoints(n int) ([]float64, []Point) {
	angles := EvenlySpacedAngles(n)
	points := make([]Point, len(angles))
	for i, a := range angles {
		points[i] = c.PointFromAngle(a)
	}
	return angles, points
}

// arcDistance returns the shorter of the two arc distances between angles a
// and b, in degrees. Always in [0, 180].
func arcDistance(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 360)
	if d > 180 {
		d = 360 - d
	}
	return d
}
