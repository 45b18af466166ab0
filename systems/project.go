package systems

import (
	"sort"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/vitoleone27/vhsplayer3d/components"
)

// Every object is drawn from this box, scaled and placed by its transform.
var boxCorners = [8]mgl32.Vec3{
	{.5, .9, .5},
	{-.5, .9, .5},
	{-.5, -.1, .5},
	{.5, -.1, .5},
	{.5, -.1, -.5},
	{-.5, -.1, -.5},
	{-.5, .9, -.5},
	{.5, .9, -.5},
}

var boxUV = [8]mgl32.Vec2{
	{1, 1}, {0, 1}, {0, 0}, {1, 0},
	{1, 1}, {0, 1}, {0, 0}, {1, 0},
}

var boxIndices = [36]int{
	1, 2, 0, 2, 3, 0,
	7, 6, 1, 0, 7, 1,
	1, 6, 2, 6, 5, 2,
	3, 2, 4, 2, 5, 4,
	6, 7, 5, 7, 4, 5,
	0, 3, 7, 3, 4, 7,
}

// Projection maps eye space to normalized device coordinates.
var Projection = mgl32.Ortho(-1, 1, -1, 1, -1, 0.65)

var light = mgl32.Vec3{0, 1, -0.0001}

const (
	materialAmbient = 0.8
	materialDiffuse = 0.4
)

// Vertex is a projected box corner.
type Vertex struct {
	Pos   mgl32.Vec3 // Normalized device coordinates
	UV    mgl32.Vec2 // v points up
	Shade float32
}

// Tri is one projected triangle, already clipped to the depth range.
type Tri [3]Vertex

// Depth is the mean NDC depth; larger is farther.
func (t Tri) Depth() float32 {
	return (t[0].Pos.Z() + t[1].Pos.Z() + t[2].Pos.Z()) / 3
}

// ModelView builds rotateX · rotateY · translate · scale for an object.
func ModelView(o components.ObjectState) mgl32.Mat4 {
	return mgl32.HomogRotate3DX(float32(o.Rotation[0])).
		Mul4(mgl32.HomogRotate3DY(float32(o.Rotation[1]))).
		Mul4(mgl32.Translate3D(float32(o.Translation[0]), float32(o.Translation[1]), float32(o.Translation[2]))).
		Mul4(mgl32.Scale3D(float32(o.Scale[0]), float32(o.Scale[1]), float32(o.Scale[2])))
}

// ProjectObject transforms, lights and depth-clips the box for one object.
func ProjectObject(o components.ObjectState) []Tri {
	mv := ModelView(o)
	normal := mv.Mat3()

	var verts [8]Vertex
	for i, c := range boxCorners {
		eye := mv.Mul4x1(c.Vec4(1))
		clip := Projection.Mul4x1(eye)

		// Corner positions double as normals
		n := normal.Mul3x1(c).Normalize()
		l := eye.Vec3().Sub(light).Normalize()
		diffuse := max(l.Mul(-1).Dot(n), 0)

		verts[i] = Vertex{
			Pos:   clip.Vec3().Mul(1 / clip.W()),
			UV:    boxUV[i],
			Shade: materialAmbient + materialDiffuse*diffuse,
		}
	}

	tris := make([]Tri, 0, len(boxIndices)/3)
	for i := 0; i < len(boxIndices); i += 3 {
		poly := []Vertex{verts[boxIndices[i]], verts[boxIndices[i+1]], verts[boxIndices[i+2]]}
		poly = clipDepth(poly, -1, 1)
		poly = clipDepth(poly, 1, -1)
		for j := 1; j+1 < len(poly); j++ {
			tris = append(tris, Tri{poly[0], poly[j], poly[j+1]})
		}
	}
	return tris
}

// clipDepth keeps the part of a convex polygon on the inner side of the plane
// z = bound, where inner is towards inward.
func clipDepth(poly []Vertex, bound, inward float32) []Vertex {
	if len(poly) == 0 {
		return nil
	}
	inside := func(v Vertex) bool {
		if inward > bound {
			return v.Pos.Z() >= bound
		}
		return v.Pos.Z() <= bound
	}

	out := make([]Vertex, 0, len(poly)+1)
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		curIn, prevIn := inside(cur), inside(prev)
		if curIn != prevIn {
			out = append(out, lerpVertex(prev, cur, (bound-prev.Pos.Z())/(cur.Pos.Z()-prev.Pos.Z())))
		}
		if curIn {
			out = append(out, cur)
		}
	}
	if len(out) < 3 {
		return nil
	}
	return out
}

func lerpVertex(a, b Vertex, t float32) Vertex {
	return Vertex{
		Pos:   a.Pos.Add(b.Pos.Sub(a.Pos).Mul(t)),
		UV:    a.UV.Add(b.UV.Sub(a.UV).Mul(t)),
		Shade: a.Shade + (b.Shade-a.Shade)*t,
	}
}

// drawItem is a triangle queued for the painter's pass.
type drawItem struct {
	tri     Tri
	texture int     // Index into the frame's texture list
	alpha   float32 // Object opacity
	order   int     // On equal depth, lower order is painted last
}

// sortBackToFront orders items far to near.
func sortBackToFront(items []drawItem) {
	sort.SliceStable(items, func(i, j int) bool {
		di, dj := items[i].tri.Depth(), items[j].tri.Depth()
		if di != dj {
			return di > dj
		}
		return items[i].order > items[j].order
	})
}
