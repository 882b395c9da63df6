// Package shader provides OpenGL shader compilation and the ribbon program.
package shader

import (
	_ "embed"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Ribbon shader sources.
var (
	//go:embed ribbon.vert
	RibbonVertex string
	//go:embed ribbon.frag
	RibbonFragment string
)

// CompileProgram compiles vertex and fragment shaders and links them into a program.
// Returns the program ID or an error if compilation/linking fails.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		msg := programLog(program)
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", msg)
	}

	return program, nil
}

// compileShader compiles a single shader of the given type.
func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		msg := make([]byte, max(logLen, 1))
		gl.GetShaderInfoLog(shader, logLen, nil, &msg[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, trimLog(msg))
	}

	return shader, nil
}

func programLog(program uint32) string {
	var logLen int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
	msg := make([]byte, max(logLen, 1))
	gl.GetProgramInfoLog(program, logLen, nil, &msg[0])
	return trimLog(msg)
}

// trimLog drops the NUL terminator GL writes into info logs.
func trimLog(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// GetUniform returns the uniform location for the given name.
// Returns -1 if the uniform is not found or inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

// MustGetUniform returns the uniform location for the given name.
// Panics if the uniform is not found (useful for required uniforms).
func MustGetUniform(program uint32, name string) int32 {
	loc := GetUniform(program, name)
	if loc < 0 {
		panic(fmt.Sprintf("uniform %q not found in program %d", name, program))
	}
	return loc
}

// Ribbon is the linked ribbon program with its uniform locations.
type Ribbon struct {
	ID uint32

	View       int32
	Projection int32
	Tiles      int32
	Layer      int32
	Textured   int32
	Color      int32
	LightDir   int32
	Eye        int32
}

// NewRibbon compiles the embedded ribbon shaders.
func NewRibbon() (*Ribbon, error) {
	id, err := CompileProgram(RibbonVertex, RibbonFragment)
	if err != nil {
		return nil, fmt.Errorf("ribbon program: %w", err)
	}
	return &Ribbon{
		ID:         id,
		View:       MustGetUniform(id, "uView"),
		Projection: MustGetUniform(id, "uProjection"),
		Tiles:      GetUniform(id, "uTiles"),
		Layer:      GetUniform(id, "uLayer"),
		Textured:   MustGetUniform(id, "uTextured"),
		Color:      MustGetUniform(id, "uColor"),
		LightDir:   GetUniform(id, "uLightDir"),
		Eye:        GetUniform(id, "uEye"),
	}, nil
}

// Delete releases the program.
func (r *Ribbon) Delete() {
	if r.ID != 0 {
		gl.DeleteProgram(r.ID)
		r.ID = 0
	}
}
