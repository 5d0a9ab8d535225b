package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// VignetteShader darkens the canvas toward the edges behind the outro title
	VignetteShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/vignette.kage")
	if err != nil {
		return err
	}
	VignetteShader, err = ebiten.NewShader(src)
	if err != nil {
		return err
	}
	return nil
}
