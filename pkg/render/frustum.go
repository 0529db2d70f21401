package render

import "github.com/taigrr/orrery/pkg/math3d"

// Plane represents a plane in 3D space using the equation: Ax + By + Cz + D = 0
// where (A, B, C) is the normal and D is the distance from origin.
type Plane struct {
	Normal math3d.Vec3
	D      float32
}

// Normalize normalizes the plane equation so the normal has unit length.
func (p *Plane) Normalize() {
	l := p.Normal.Len()
	if l == 0 {
		return
	}
	p.Normal = p.Normal.Scale(1 / l)
	p.D /= l
}

// DistanceToPoint returns the signed distance from the plane to a point.
// Positive = in front (same side as normal), negative = behind.
func (p Plane) DistanceToPoint(point math3d.Vec3) float32 {
	return p.Normal.Dot(point) + p.D
}

// planeThrough builds a normalized plane with the given inward normal that
// contains point.
func planeThrough(normal, point math3d.Vec3) Plane {
	p := Plane{Normal: normal, D: -normal.Dot(point)}
	p.Normalize()
	return p
}

// Frustum holds the side and near planes of the view volume. Each plane's
// normal points inward. There is no far plane; distance culling is separate.
type Frustum struct {
	Planes [5]Plane
}

// FrustumPlane indices for clarity.
const (
	FrustumLeft = iota
	FrustumRight
	FrustumBottom
	FrustumTop
	FrustumNear
)

// NewFrustum derives the view volume of projector p looking through v.
func NewFrustum(p Projector, v View) Frustum {
	tv := p.tanHalfFOV()
	th := tv * p.Aspect()

	var f Frustum
	f.Planes[FrustumLeft] = planeThrough(v.Forward.Scale(th).Add(v.Right), v.Eye)
	f.Planes[FrustumRight] = planeThrough(v.Forward.Scale(th).Sub(v.Right), v.Eye)
	f.Planes[FrustumBottom] = planeThrough(v.Forward.Scale(tv).Add(v.Up), v.Eye)
	f.Planes[FrustumTop] = planeThrough(v.Forward.Scale(tv).Sub(v.Up), v.Eye)
	f.Planes[FrustumNear] = planeThrough(v.Forward, v.Eye.Add(v.Forward.Scale(NearPlane)))
	return f
}

// ContainsPoint tests if a point is inside the frustum.
func (f Frustum) ContainsPoint(p math3d.Vec3) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceToPoint(p) < 0 {
			return false
		}
	}
	return true
}

// IntersectsSphere tests if a sphere intersects the frustum.
// center is the sphere center, radius is the sphere radius.
func (f Frustum) IntersectsSphere(center math3d.Vec3, radius float32) bool {
	for i := range f.Planes {
		if f.Planes[i].DistanceToPoint(center) < -radius {
			return false
		}
	}
	return true
}
