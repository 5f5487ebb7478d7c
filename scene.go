package blockscene

import (
	"fmt"

	"go.uber.org/zap"
)

// Services are the engine collaborators a Scene draws on. Every field except
// Logger is required.
type Services struct {
	Device      Device
	Input       Input
	Audio       Audio
	Textures    TextureStore
	Sprites     DrawPhase
	Models      DrawPhase
	Model       Model
	Buffers     Transferer
	DebugCamera DebugCamera
	Logger      *zap.Logger
}

func (s Services) validate() error {
	required := []struct {
		name string
		ok   bool
	}{
		{"Device", s.Device != nil},
		{"Input", s.Input != nil},
		{"Audio", s.Audio != nil},
		{"Textures", s.Textures != nil},
		{"Sprites", s.Sprites != nil},
		{"Models", s.Models != nil},
		{"Model", s.Model != nil},
		{"Buffers", s.Buffers != nil},
		{"DebugCamera", s.DebugCamera != nil},
	}
	for _, r := range required {
		if !r.ok {
			return MissingServiceError{Name: r.name}
		}
	}
	return nil
}

// Scene is the block field: Initialize once, then Update and Draw once per
// frame, then Close.
type Scene struct {
	svc Services
	cfg Config
	log *zap.Logger

	pattern   Pattern
	toggleKey Key

	storage        Storage
	viewProjection ViewProjection
	texture        TextureHandle

	debugCamera       DebugCamera
	debugCameraActive bool

	frame       uint64
	initialized bool
	closed      bool
}

func newScene(svc Services, cfg Config) (*Scene, error) {
	if err := svc.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pattern, err := PatternByName(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	key, err := ParseKey(cfg.DebugCamera.ToggleKey)
	if err != nil {
		return nil, err
	}
	log := svc.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Scene{
		svc:         svc,
		cfg:         cfg,
		log:         log.Named("scene"),
		pattern:     pattern,
		toggleKey:   key,
		debugCamera: svc.DebugCamera,
	}, nil
}

// Initialize lays out the grid and loads the block texture.
func (s *Scene) Initialize() error {
	switch {
	case s.closed:
		return SceneStateError{Op: "initialize", State: "closed"}
	case s.initialized:
		return SceneStateError{Op: "initialize", State: "already initialized"}
	}

	s.viewProjection.Initialize(s.cfg.Camera)

	texture, err := s.svc.Textures.Load(s.cfg.Texture)
	if err != nil {
		return fmt.Errorf("failed to initialize scene: %w", err)
	}
	s.texture = texture

	s.storage = Factory.NewStorage(s.cfg.Grid.Rows, s.cfg.Grid.Columns)
	n, err := PopulateGrid(s.storage, s.pattern, Layout{
		BlockWidth:  s.cfg.Grid.BlockWidth,
		BlockHeight: s.cfg.Grid.BlockHeight,
		Spin:        s.cfg.Spin,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize scene: %w", err)
	}

	spinning := 0
	for _, ac := range s.storage.Archetypes(Spinning) {
		spinning += ac.Blocks
	}

	s.initialized = true
	s.log.Info("scene initialized",
		zap.Int("rows", s.cfg.Grid.Rows),
		zap.Int("columns", s.cfg.Grid.Columns),
		zap.Int("blocks", n),
		zap.Int("spinning", spinning),
		zap.String("pattern", s.cfg.Pattern),
		zap.String("texture", s.cfg.Texture),
		zap.Bool("audio_ready", s.svc.Audio.IsReady()),
	)
	return nil
}

// Update rebuilds and uploads every block's world matrix, then settles which
// camera the frame uses.
func (s *Scene) Update() error {
	if err := s.ready("update"); err != nil {
		return err
	}

	cursor := Factory.NewCursor(s.storage, Transform)
	for cursor.Next() {
		wt := Transform.GetFromCursor(cursor)
		if ok, spin := Spinning.GetFromCursorSafe(cursor); ok {
			wt.Rotation = wt.Rotation.Add(spin.Delta)
		}
		wt.UpdateMatrix()
		s.svc.Buffers.TransferWorld(wt.Cell, wt.MatWorld)
	}

	s.debugCamera.Update()

	if s.cfg.DebugCamera.Enabled && s.svc.Input.TriggerKey(s.toggleKey) {
		s.debugCameraActive = !s.debugCameraActive
		s.log.Debug("debug camera toggled",
			zap.Bool("active", s.debugCameraActive),
			zap.Uint64("frame", s.frame),
		)
	}

	if s.debugCameraActive {
		debug := s.debugCamera.ViewProjection()
		s.viewProjection.MatView = debug.MatView
		s.viewProjection.MatProjection = debug.MatProjection
	} else {
		s.viewProjection.UpdateMatrix()
	}
	s.svc.Buffers.TransferViewProjection(s.viewProjection.MatView, s.viewProjection.MatProjection)

	s.frame++
	return nil
}

// Draw issues the frame's draw phases: background sprites, one model draw
// per block, foreground sprites. It does nothing before Initialize or after
// Close.
func (s *Scene) Draw() {
	if s.ready("draw") != nil {
		return
	}
	commandList := s.svc.Device.CommandList()

	// Background sprites
	s.svc.Sprites.PreDraw(commandList)
	s.svc.Sprites.PostDraw()
	s.svc.Device.ClearDepthBuffer()

	s.svc.Models.PreDraw(commandList)
	cursor := Factory.NewCursor(s.storage, Transform)
	for cursor.Next() {
		s.svc.Model.Draw(Transform.GetFromCursor(cursor), &s.viewProjection, s.texture)
	}
	s.svc.Models.PostDraw()

	// Foreground sprites
	s.svc.Sprites.PreDraw(commandList)
	s.svc.Sprites.PostDraw()
}

// Close destroys every block and lets go of the debug camera. Calling it
// again is a no-op.
func (s *Scene) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.debugCamera = nil
	if s.storage == nil {
		return nil
	}
	n := s.storage.Len()
	if err := s.storage.Clear(); err != nil {
		return fmt.Errorf("failed to release blocks: %w", err)
	}
	s.log.Info("scene closed", zap.Int("released", n), zap.Uint64("frames", s.frame))
	return nil
}

func (s *Scene) ready(op string) error {
	switch {
	case s.closed:
		return SceneStateError{Op: op, State: "closed"}
	case !s.initialized:
		return SceneStateError{Op: op, State: "not initialized"}
	}
	return nil
}

// Storage exposes the block storage. It is nil before Initialize.
func (s *Scene) Storage() Storage {
	return s.storage
}

func (s *Scene) ViewProjection() ViewProjection {
	return s.viewProjection
}

func (s *Scene) DebugCameraActive() bool {
	return s.debugCameraActive
}

func (s *Scene) Texture() TextureHandle {
	return s.texture
}

// Frame counts completed updates.
func (s *Scene) Frame() uint64 {
	return s.frame
}
