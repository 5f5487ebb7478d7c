// Package headless steps a scene without a window, optionally saving the
// last rendered frame as a PNG.
package headless

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/TheBitDrifter/blockscene"
	"github.com/TheBitDrifter/blockscene/internal/softgl"
	"go.uber.org/zap"
)

type Config struct {
	// Hz paces frames; zero runs as fast as possible.
	Hz int
	// Frames stops the run after N frames; zero runs until ctx is done.
	Frames uint64
	// Snapshot, when set, receives the final frame as a PNG.
	Snapshot string
}

// Stepper is the part of blockscene.Scene the runner drives.
type Stepper interface {
	Update() error
	Draw()
	Close() error
}

// Input never reports a key.
type Input struct{}

func (Input) TriggerKey(blockscene.Key) bool { return false }
func (Input) PushKey(blockscene.Key) bool    { return false }

// Audio is always ready and never plays.
type Audio struct{}

func (Audio) IsReady() bool { return true }

// Run steps scene until cfg.Frames is reached or ctx is done, then closes
// it. Cancellation is not an error; a failed Close is, unless the run had
// already failed.
func Run(ctx context.Context, scene Stepper, device *softgl.Device, cfg Config, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("headless")

	err := run(ctx, scene, device, cfg, log)
	if cerr := scene.Close(); cerr != nil {
		log.Error("scene teardown failed", zap.Error(cerr))
		if err == nil {
			err = cerr
		}
	}
	return err
}

func run(ctx context.Context, scene Stepper, device *softgl.Device, cfg Config, log *zap.Logger) error {
	var tick <-chan time.Time
	if cfg.Hz > 0 {
		t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
		defer t.Stop()
		tick = t.C
	}

	var frames uint64
	start := time.Now()
loop:
	for cfg.Frames == 0 || frames < cfg.Frames {
		if tick != nil {
			select {
			case <-ctx.Done():
				break loop
			case <-tick:
			}
		} else if ctx.Err() != nil {
			break
		}

		device.BeginFrame()
		if err := scene.Update(); err != nil {
			return fmt.Errorf("frame %d: %w", frames, err)
		}
		scene.Draw()
		frames++
	}

	log.Info("headless run finished",
		zap.Uint64("frames", frames),
		zap.Duration("elapsed", time.Since(start)),
	)
	if cfg.Snapshot != "" && frames > 0 {
		if err := writePNG(cfg.Snapshot, device.Frame()); err != nil {
			return err
		}
		log.Info("snapshot written", zap.String("path", cfg.Snapshot))
	}
	return nil
}

func writePNG(path string, frame *softgl.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot: %w", err)
	}
	if err := png.Encode(f, frame.Image()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return f.Close()
}
