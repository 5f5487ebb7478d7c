package softgl

import (
	"image"
	"image/color"

	"github.com/TheBitDrifter/blockscene"
	"github.com/TheBitDrifter/blockscene/affine"
	"github.com/go-gl/mathgl/mgl32"
)

var _ blockscene.Model = &CubeModel{}

// TextureSource resolves handles handed out by a texture store.
type TextureSource interface {
	Texture(blockscene.TextureHandle) (*blockscene.Texture, bool)
}

// Light is one directional light plus ambient.
type Light struct {
	// Dir points from the light into the scene.
	Dir     mgl32.Vec3
	Ambient float32
	Diffuse float32
}

var DefaultLight = Light{
	Dir:     mgl32.Vec3{-0.3, -0.5, 1},
	Ambient: 0.35,
	Diffuse: 0.65,
}

type face struct {
	normal mgl32.Vec3
	quad   [4]int
}

var cubeCorners = [8]affine.Vector3{
	{X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1},
}

var cubeFaces = [6]face{
	{mgl32.Vec3{0, 0, -1}, [4]int{0, 1, 2, 3}},
	{mgl32.Vec3{0, 0, 1}, [4]int{5, 4, 7, 6}},
	{mgl32.Vec3{-1, 0, 0}, [4]int{4, 0, 3, 7}},
	{mgl32.Vec3{1, 0, 0}, [4]int{1, 5, 6, 2}},
	{mgl32.Vec3{0, 1, 0}, [4]int{3, 2, 6, 7}},
	{mgl32.Vec3{0, -1, 0}, [4]int{4, 5, 1, 0}},
}

// CubeModel draws a 2x2x2 cube centred on the block origin, tinted by the
// average color of its texture. Draws outside the model phase are dropped.
type CubeModel struct {
	Light Light

	phase     *Phase
	textures  TextureSource
	constants *Constants
	tints     map[blockscene.TextureHandle]color.RGBA

	drawn     int
	dropped   int
	triangles int
}

// NewCubeModel draws into whatever frame phase has open. When constants is
// non-nil, uploaded matrices take precedence over the ones passed to Draw.
func NewCubeModel(phase *Phase, textures TextureSource, constants *Constants) *CubeModel {
	return &CubeModel{
		Light:     DefaultLight,
		phase:     phase,
		textures:  textures,
		constants: constants,
		tints:     make(map[blockscene.TextureHandle]color.RGBA),
	}
}

func (m *CubeModel) Draw(wt *blockscene.WorldTransform, vp *blockscene.ViewProjection, texture blockscene.TextureHandle) {
	target := m.phase.Target()
	if target == nil {
		m.dropped++
		return
	}

	world := wt.MatWorld
	viewProj := vp.Matrix()
	if m.constants != nil {
		if uploaded, ok := m.constants.World(wt.Cell); ok {
			world = uploaded
		}
		if uploaded, ok := m.constants.ViewProjection(); ok {
			viewProj = uploaded
		}
	}
	mvp := affine.Multiply(world, viewProj)
	tint := m.tint(texture)

	w, h := target.Size()
	var clip [8]affine.Vector4
	for i, corner := range cubeCorners {
		clip[i] = affine.TransformVector4(corner.Vec4(1), mvp)
	}

	for _, f := range cubeFaces {
		n := affine.TransformVector4(affine.Vector3{X: f.normal[0], Y: f.normal[1], Z: f.normal[2]}.Vec4(0), world)
		c := shade(tint, m.Light, mgl32.Vec3{n.X, n.Y, n.Z})
		q := f.quad
		m.rasterize(target, w, h, clip[q[0]], clip[q[1]], clip[q[2]], c)
		m.rasterize(target, w, h, clip[q[0]], clip[q[2]], clip[q[3]], c)
	}
	m.drawn++
}

// Stats reports cubes drawn, draws dropped outside a phase and triangles
// rasterised.
func (m *CubeModel) Stats() (drawn, dropped, triangles int) {
	return m.drawn, m.dropped, m.triangles
}

func (m *CubeModel) tint(h blockscene.TextureHandle) color.RGBA {
	if c, ok := m.tints[h]; ok {
		return c
	}
	c := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	if m.textures != nil {
		if tex, ok := m.textures.Texture(h); ok && tex.Image != nil {
			c = averageColor(tex.Image)
		}
	}
	m.tints[h] = c
	return c
}

// averageColor samples at most a 64x64 lattice of img.
func averageColor(img image.Image) color.RGBA {
	b := img.Bounds()
	if b.Empty() {
		return color.RGBA{A: 0xff}
	}
	stepX := max(1, b.Dx()/64)
	stepY := max(1, b.Dy()/64)
	var r, g, bl, n uint64
	for y := b.Min.Y; y < b.Max.Y; y += stepY {
		for x := b.Min.X; x < b.Max.X; x += stepX {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			r += uint64(cr >> 8)
			g += uint64(cg >> 8)
			bl += uint64(cb >> 8)
			n++
		}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(bl / n), A: 0xff}
}

func shade(c color.RGBA, l Light, normal mgl32.Vec3) color.RGBA {
	intensity := l.Ambient
	if normal.Len() > 0 && l.Dir.Len() > 0 {
		d := normal.Normalize().Dot(l.Dir.Normalize().Mul(-1))
		if d > 0 {
			intensity += d * l.Diffuse
		}
	}
	intensity = mgl32.Clamp(intensity, 0, 1)
	return color.RGBA{
		R: uint8(float32(c.R) * intensity),
		G: uint8(float32(c.G) * intensity),
		B: uint8(float32(c.B) * intensity),
		A: c.A,
	}
}

type screenPoint struct {
	x, y int
	z    float32
}

func toScreen(p affine.Vector4, w, h int) (screenPoint, bool) {
	// No near-plane clipping: a triangle touching w<=0 is dropped whole.
	if p.W <= 0 {
		return screenPoint{}, false
	}
	inv := 1 / p.W
	nx, ny, nz := p.X*inv, p.Y*inv, p.Z*inv
	sx := (nx*0.5 + 0.5) * float32(w-1)
	sy := (1 - (ny*0.5 + 0.5)) * float32(h-1)
	return screenPoint{x: int(sx + 0.5), y: int(sy + 0.5), z: nz}, true
}

func (m *CubeModel) rasterize(f *Frame, w, h int, c0, c1, c2 affine.Vector4, c color.RGBA) {
	p0, ok0 := toScreen(c0, w, h)
	p1, ok1 := toScreen(c1, w, h)
	p2, ok2 := toScreen(c2, w, h)
	if !ok0 || !ok1 || !ok2 {
		return
	}

	area := edgeFn(p0.x, p0.y, p1.x, p1.y, p2.x, p2.y)
	if area == 0 {
		return
	}
	if area < 0 {
		p1, p2 = p2, p1
		area = -area
	}

	minX, maxX := max(min(p0.x, p1.x, p2.x), 0), min(max(p0.x, p1.x, p2.x), w-1)
	minY, maxY := max(min(p0.y, p1.y, p2.y), 0), min(max(p0.y, p1.y, p2.y), h-1)
	if minX > maxX || minY > maxY {
		return
	}
	m.triangles++

	invArea := 1 / float32(area)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(p1.x, p1.y, p2.x, p2.y, x, y)
			w1 := edgeFn(p2.x, p2.y, p0.x, p0.y, x, y)
			w2 := edgeFn(p0.x, p0.y, p1.x, p1.y, x, y)
			if (w0 | w1 | w2) < 0 {
				continue
			}
			z := (float32(w0)*p0.z + float32(w1)*p1.z + float32(w2)*p2.z) * invArea
			if f.depthTest(x, y, z) {
				f.SetPixel(x, y, c)
			}
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}
