package blockscene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/TheBitDrifter/blockscene/affine"
	"github.com/TheBitDrifter/table"
	"gopkg.in/yaml.v3"
)

// Settings holds global configuration for the block tables
var Settings settings = settings{}

type settings struct {
	tableEvents table.TableEvents
}

// SetTableEvents configures the table event callbacks
func (s *settings) SetTableEvents(te table.TableEvents) {
	s.tableEvents = te
}

// Config describes one scene. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	Grid            GridConfig        `yaml:"grid"`
	Pattern         string            `yaml:"pattern"`
	Texture         string            `yaml:"texture"`
	TextureCapacity int               `yaml:"texture_capacity"`
	Spin            affine.Vector3    `yaml:"spin"`
	Camera          CameraConfig      `yaml:"camera"`
	DebugCamera     DebugCameraConfig `yaml:"debug_camera"`
	LogLevel        string            `yaml:"log_level"`
	Window          WindowConfig      `yaml:"window"`
}

type GridConfig struct {
	Rows        int     `yaml:"rows"`
	Columns     int     `yaml:"columns"`
	BlockWidth  float32 `yaml:"block_width"`
	BlockHeight float32 `yaml:"block_height"`
}

type CameraConfig struct {
	Eye    affine.Vector3 `yaml:"eye"`
	Target affine.Vector3 `yaml:"target"`
	Up     affine.Vector3 `yaml:"up"`
	// FovY is in degrees.
	FovY   float32 `yaml:"fov_y"`
	Aspect float32 `yaml:"aspect"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`
}

type DebugCameraConfig struct {
	// Enabled allows ToggleKey to switch to the debug camera at runtime.
	Enabled   bool    `yaml:"enabled"`
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	ToggleKey string  `yaml:"toggle_key"`
	Distance  float32 `yaml:"distance"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"`
}

func DefaultConfig() Config {
	return Config{
		Grid: GridConfig{
			Rows:        10,
			Columns:     20,
			BlockWidth:  2,
			BlockHeight: 2,
		},
		Pattern:         PatternCheckerboard,
		Texture:         "cube/cube.png",
		TextureCapacity: 16,
		Camera: CameraConfig{
			Eye:    affine.Vector3{Z: -50},
			Up:     affine.Vector3{Y: 1},
			FovY:   45,
			Aspect: 1280.0 / 720.0,
			Near:   0.1,
			Far:    1000,
		},
		DebugCamera: DebugCameraConfig{
			Width:     1280,
			Height:    720,
			ToggleKey: Key0.String(),
			Distance:  50,
		},
		LogLevel: "info",
		Window: WindowConfig{
			Width:  1280,
			Height: 720,
			Title:  "blockscene",
			TPS:    60,
		},
	}
}

// LoadConfig decodes YAML over DefaultConfig. Empty input yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer f.Close()
	return LoadConfig(f)
}

func (c Config) Validate() error {
	switch {
	case c.Grid.Rows <= 0:
		return ConfigError{"grid.rows", "must be positive"}
	case c.Grid.Columns <= 0:
		return ConfigError{"grid.columns", "must be positive"}
	case c.Texture == "":
		return ConfigError{"texture", "must not be empty"}
	case c.TextureCapacity <= 0:
		return ConfigError{"texture_capacity", "must be positive"}
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return ConfigError{"camera", "need 0 < near < far"}
	case c.Camera.FovY <= 0 || c.Camera.FovY >= 180:
		return ConfigError{"camera.fov_y", "must be within (0, 180) degrees"}
	}
	if _, err := PatternByName(c.Pattern); err != nil {
		return ConfigError{"pattern", err.Error()}
	}
	if _, err := ParseKey(c.DebugCamera.ToggleKey); err != nil {
		return ConfigError{"debug_camera.toggle_key", err.Error()}
	}
	return nil
}
