// Package host runs a blockscene.Scene inside an ebiten window.
package host

import (
	"errors"

	"github.com/TheBitDrifter/blockscene"
	"github.com/TheBitDrifter/blockscene/internal/softgl"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Game adapts a scene and its software device to ebiten.Game.
type Game struct {
	scene  *blockscene.Scene
	device *softgl.Device
	input  blockscene.Input
	log    *zap.Logger

	fbImg *ebiten.Image
}

func NewGame(scene *blockscene.Scene, device *softgl.Device, input blockscene.Input, log *zap.Logger) *Game {
	if log == nil {
		log = zap.NewNop()
	}
	return &Game{scene: scene, device: device, input: input, log: log.Named("host")}
}

func (g *Game) Update() error {
	if g.input.TriggerKey(blockscene.KeyEscape) {
		return ebiten.Termination
	}
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.device.BeginFrame()
	g.scene.Draw()

	frame := g.device.Frame()
	w, h := frame.Size()
	if g.fbImg == nil || g.fbImg.Bounds().Dx() != w || g.fbImg.Bounds().Dy() != h {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(w, h)
	}
	g.fbImg.WritePixels(frame.Image().Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.device.Frame().Size()
}

// Run opens the window and blocks until it closes or Escape is pressed. The
// scene is closed on the way out.
func Run(g *Game, cfg blockscene.WindowConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetTPS(cfg.TPS)

	g.log.Info("window opening",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
	)
	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	if cerr := g.scene.Close(); cerr != nil {
		g.log.Error("scene teardown failed", zap.Error(cerr))
		if err == nil {
			err = cerr
		}
	}
	g.log.Info("window closed", zap.Uint64("frames", g.scene.Frame()))
	return err
}
