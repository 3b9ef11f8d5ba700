// Package vector copies mgl32 vectors with a single component replaced or
// shifted. The input vector is never modified.
package vector

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Vec is any vector that has X and Y components.
type Vec interface {
	mgl32.Vec2 | mgl32.Vec3 | mgl32.Vec4
}

// Vec3Up is any vector that also has a Z component.
type Vec3Up interface {
	mgl32.Vec3 | mgl32.Vec4
}

func WithX[V Vec](v V, x float32) V {
	v[0] = x
	return v
}

func WithY[V Vec](v V, y float32) V {
	v[1] = y
	return v
}

func WithZ[V Vec3Up](v V, z float32) V {
	v[2] = z
	return v
}

func WithW(v mgl32.Vec4, w float32) mgl32.Vec4 {
	v[3] = w
	return v
}

func AddX[V Vec](v V, delta float32) V {
	v[0] += delta
	return v
}

func AddY[V Vec](v V, delta float32) V {
	v[1] += delta
	return v
}

func AddZ[V Vec3Up](v V, delta float32) V {
	v[2] += delta
	return v
}

func AddW(v mgl32.Vec4, delta float32) mgl32.Vec4 {
	v[3] += delta
	return v
}

// ToVec2 drops the Z component.
func ToVec2(v mgl32.Vec3) mgl32.Vec2 {
	return v.Vec2()
}

// ToVec3 drops the W component.
func ToVec3(v mgl32.Vec4) mgl32.Vec3 {
	return v.Vec3()
}
