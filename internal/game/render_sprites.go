//go:build !android

package game

import "github.com/go-gl/gl/v4.1-core/gl"

// DrawSprites renders round point sprites with alpha blending.
// buf format: [x, y, diameter, r, g, b, a] * N.
func (r *Renderer) DrawSprites(buf []float32, cam Camera, fbW, fbH int) {
	if len(buf) == 0 {
		return
	}

	count := min(len(buf)/SpriteFloats, MaxSpriteRender)
	x, y := cam.EffectivePos()

	gl.UseProgram(r.spriteProg)
	gl.BindVertexArray(r.spriteVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.spriteVBO)

	gl.Uniform2f(r.spUCamera, float32(x), float32(y))
	gl.Uniform1f(r.spUZoom, float32(cam.Zoom))
	gl.Uniform2f(r.spUResolution, float32(fbW), float32(fbH))

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.BufferSubData(gl.ARRAY_BUFFER, 0, count*SpriteFloats*4, gl.Ptr(buf))
	gl.DrawArrays(gl.POINTS, 0, int32(count))

	gl.Disable(gl.BLEND)
}
