package renderer

import (
	"errors"
	"fmt"
	"image"
	"slices"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/ribbon-studio/pkg/ribbon"
)

var vertexStride = int32(unsafe.Sizeof(ribbon.Vertex{}))

// glBackend stores segment meshes in VAOs with interleaved vertex buffers.
type glBackend struct{}

func (glBackend) create() mesh {
	var m mesh
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)

	// Layout matches ribbon.Vertex: position, normal, texcoord.
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, unsafe.Offsetof(ribbon.Vertex{}.Position))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, unsafe.Offsetof(ribbon.Vertex{}.Normal))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, vertexStride, unsafe.Offsetof(ribbon.Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)
	return m
}

func (glBackend) upload(m *mesh, seg *ribbon.Segment) {
	m.indexCount = 0
	if len(seg.Vertices) == 0 || len(seg.Indices) == 0 {
		return
	}

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(seg.Vertices)*int(vertexStride), unsafe.Pointer(&seg.Vertices[0]), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(seg.Indices)*4, unsafe.Pointer(&seg.Indices[0]), gl.DYNAMIC_DRAW)
	gl.BindVertexArray(0)

	m.indexCount = int32(len(seg.Indices))
}

func (glBackend) destroy(m mesh) {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
}

// UploadLayers stores equally sized frames as one 2D array texture,
// frame i in layer i.
func (r *Renderer) UploadLayers(frames []*image.RGBA) (uint32, error) {
	if len(frames) == 0 {
		return 0, errors.New("no frames")
	}
	w, h := frames[0].Bounds().Dx(), frames[0].Bounds().Dy()
	for i, f := range frames {
		if f.Bounds().Dx() != w || f.Bounds().Dy() != h {
			return 0, fmt.Errorf("frame %d is %dx%d, want %dx%d", i, f.Bounds().Dx(), f.Bounds().Dy(), w, h)
		}
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, tex)
	gl.TexImage3D(gl.TEXTURE_2D_ARRAY, 0, gl.RGBA8, int32(w), int32(h), int32(len(frames)), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	for i, f := range frames {
		gl.TexSubImage3D(gl.TEXTURE_2D_ARRAY, 0, 0, 0, int32(i), int32(w), int32(h), 1, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&f.Pix[0]))
	}
	gl.GenerateMipmap(gl.TEXTURE_2D_ARRAY)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D_ARRAY, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D_ARRAY, 0)

	if errCode := gl.GetError(); errCode != gl.NO_ERROR {
		gl.DeleteTextures(1, &tex)
		return 0, fmt.Errorf("texture upload: GL error 0x%x", errCode)
	}

	r.textures = append(r.textures, tex)
	return tex, nil
}

// DeleteLayers frees textures created by UploadLayers.
func (r *Renderer) DeleteLayers(textures []uint32) {
	if len(textures) == 0 {
		return
	}
	gl.DeleteTextures(int32(len(textures)), &textures[0])
	r.textures = slices.DeleteFunc(r.textures, func(tex uint32) bool {
		return slices.Contains(textures, tex)
	})
}

// ReadPixels returns the framebuffer as bottom-up RGBA rows.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	if len(pixels) == 0 {
		return pixels, w, h
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&pixels[0]))
	return pixels, w, h
}
