package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/TheBitDrifter/blockscene"
	"github.com/TheBitDrifter/blockscene/internal/assets"
	"github.com/TheBitDrifter/blockscene/internal/camera"
	"github.com/TheBitDrifter/blockscene/internal/headless"
	"github.com/TheBitDrifter/blockscene/internal/host"
	"github.com/TheBitDrifter/blockscene/internal/logging"
	"github.com/TheBitDrifter/blockscene/internal/softgl"
	"go.uber.org/zap"
)

type options struct {
	configPath string
	resources  string
	logLevel   string
	logFormat  string

	headless bool
	hz       int
	frames   uint64
	snapshot string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "Scene config YAML (defaults when empty).")
	flag.StringVar(&opts.resources, "resources", "resources", "Directory textures are loaded from.")
	flag.StringVar(&opts.logLevel, "log-level", "", "Override the config log level.")
	flag.StringVar(&opts.logFormat, "log-format", "console", "Log encoding: console or json.")
	flag.BoolVar(&opts.headless, "headless", false, "Run without a window.")
	flag.IntVar(&opts.hz, "hz", 60, "Frame rate in headless mode (0 = unpaced).")
	flag.Uint64Var(&opts.frames, "frames", 0, "Stop after N frames in headless mode (0 = run until interrupted).")
	flag.StringVar(&opts.snapshot, "snapshot", "", "Write the last headless frame to this PNG.")
	flag.Parse()

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg := blockscene.DefaultConfig()
	if opts.configPath != "" {
		var err error
		if cfg, err = blockscene.LoadConfigFile(opts.configPath); err != nil {
			return err
		}
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}

	log, err := logging.New(logging.Options{Level: cfg.LogLevel, Encoding: opts.logFormat})
	if err != nil {
		return err
	}
	defer log.Sync()

	device := softgl.NewDevice(cfg.Window.Width, cfg.Window.Height)
	textures := blockscene.Factory.NewTextureManager(assets.NewDirLoader(opts.resources), cfg.TextureCapacity)
	constants := softgl.NewConstants()
	models := softgl.NewPhase("model")

	svc := blockscene.Services{
		Device:   device,
		Textures: textures,
		Sprites:  softgl.NewPhase("sprite"),
		Models:   models,
		Model:    softgl.NewCubeModel(models, textures, constants),
		Buffers:  constants,
		Logger:   log,
	}
	if opts.headless {
		svc.Input = headless.Input{}
		svc.Audio = headless.Audio{}
	} else {
		svc.Input = host.Keyboard{}
		svc.Audio = host.NewAudio()
	}
	svc.DebugCamera = camera.New(cfg.DebugCamera.Width, cfg.DebugCamera.Height, svc.Input, cfg.Camera.Target, cfg.DebugCamera.Distance)

	scene, err := blockscene.Factory.NewScene(svc, cfg)
	if err != nil {
		return err
	}
	if err := scene.Initialize(); err != nil {
		return err
	}

	if opts.headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return headless.Run(ctx, scene, device, headless.Config{
			Hz:       opts.hz,
			Frames:   opts.frames,
			Snapshot: opts.snapshot,
		}, log)
	}

	log.Debug("starting window", zap.Bool("debug_camera", cfg.DebugCamera.Enabled))
	return host.Run(host.NewGame(scene, device, svc.Input, log), cfg.Window)
}
