package light

import "math"

// Vec2 is an immutable 2D vector. All geometry in the engine is expressed
// with these; angles are radians, +Y is up, rotations are counter-clockwise.
type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns the unit vector, or the zero vector when v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rotate returns v rotated counter-clockwise by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// LeftNormal returns v rotated by +90 degrees.
func (v Vec2) LeftNormal() Vec2 {
	return Vec2{-v.Y, v.X}
}

// Heading returns the angle of v in radians.
func (v Vec2) Heading() float64 {
	return math.Atan2(v.Y, v.X)
}

// RayIntersection returns the point where the two infinite rays o1+t*d1 and
// o2+u*d2 cross. Directions must be unit vectors. Directions whose dot
// product has magnitude >= 1.0 are parallel and never intersect; this is a
// hard threshold, not an epsilon window, so rays that are only almost
// parallel still resolve.
func RayIntersection(o1, d1, o2, d2 Vec2) (Vec2, bool) {
	if math.Abs(d1.Dot(d2)) >= 1.0 {
		return Vec2{}, false
	}

	// A vertical second ray collapses the system to a single unknown.
	var t1 float64
	if d2.X == 0.0 {
		t1 = (o2.X - o1.X) / d1.X
	} else {
		ta := (o1.Y - o2.Y) - (o1.X-o2.X)*(d2.Y/d2.X)
		tb := d1.X*(d2.Y/d2.X) - d1.Y
		if tb == 0.0 {
			return Vec2{}, false
		}
		t1 = ta / tb
	}

	return o1.Add(d1.Scale(t1)), true
}

// SegmentIntersection returns the point where the bounded segments s1->e1 and
// s2->e2 cross. Unlike RayIntersection both solved parameters must be
// non-negative and within their segment's length. Zero-length segments never
// intersect anything.
func SegmentIntersection(s1, e1, s2, e2 Vec2) (Vec2, bool) {
	return segmentIntersectionDir(s1, e1, e1.Sub(s1).Normalize(), s2, e2, e2.Sub(s2).Normalize())
}

// segmentIntersectionDir is SegmentIntersection with the unit directions
// already known, so callers that test many segments against a fixed edge can
// skip the normalizations.
func segmentIntersectionDir(s1, e1, d1, s2, e2, d2 Vec2) (Vec2, bool) {
	if (d1 == Vec2{}) || (d2 == Vec2{}) {
		return Vec2{}, false
	}
	if math.Abs(d1.Dot(d2)) >= 1.0 {
		return Vec2{}, false
	}

	var t1, t2 float64
	if d2.X == 0.0 {
		t1 = (s2.X - s1.X) / d1.X
		t2 = ((s1.Y - s2.Y) + d1.Y*t1) / d2.Y
	} else {
		ta := (s1.Y - s2.Y) - (s1.X-s2.X)*(d2.Y/d2.X)
		tb := d1.X*(d2.Y/d2.X) - d1.Y
		if tb == 0.0 {
			return Vec2{}, false
		}
		t1 = ta / tb
		t2 = ((s1.X - s2.X) + t1*d1.X) / d2.X
	}

	if t1 < 0.0 || t2 < 0.0 {
		return Vec2{}, false
	}

	if t1*t1 > e1.Sub(s1).LengthSq() || t2*t2 > e2.Sub(s2).LengthSq() {
		return Vec2{}, false
	}

	return s1.Add(d1.Scale(t1)), true
}

func lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}
