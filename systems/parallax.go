package systems

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/zshdevopscatftw/moondust/components"
	cfg "github.com/zshdevopscatftw/moondust/config"
)

// DrawBackground fills the sky and scatters clouds that scroll at half
// the camera speed. Cloud positions wrap around the viewport so the band
// repeats endlessly in both directions.
func DrawBackground(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Parallax.SkyColor)

	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	width := float64(screen.Bounds().Dx())
	span := width + 2*cfg.Parallax.CloudMargin

	for i := 0; i < cfg.Parallax.CloudCount; i++ {
		x := positiveMod(float64(i)*cfg.Parallax.CloudSpacing+camera.Offset.X*cfg.Parallax.CloudFactor, span) - cfg.Parallax.CloudMargin
		y := cfg.Parallax.CloudBaseY + float64(i%3)*cfg.Parallax.CloudRowStep

		drawCloud(screen, x, y)
	}
}

func drawCloud(screen *ebiten.Image, x, y float64) {
	// Ellipse approximated with a wide squat bounding box of circles
	cx := float32(x + cfg.Parallax.CloudW/2)
	cy := float32(y + cfg.Parallax.CloudH/2)
	r := float32(cfg.Parallax.CloudH / 2)
	vector.DrawFilledCircle(screen, cx-r, cy, r, cfg.Parallax.CloudColor, false)
	vector.DrawFilledCircle(screen, cx, cy, r, cfg.Parallax.CloudColor, false)
	vector.DrawFilledCircle(screen, cx+r, cy, r, cfg.Parallax.CloudColor, false)
}

func positiveMod(v, m float64) float64 {
	r := math.Mod(v, m)
	if r < 0 {
		r += m
	}
	return r
}
