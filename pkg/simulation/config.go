package simulation

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lao-tseu-is-alive/swarm-scape/pkg/flock"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed config.schema.json
var configSchema string

// ErrInvalidConfig is wrapped by Config.Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	TerrainFlat   = "flat"
	TerrainPerlin = "perlin"

	AdvisorHeuristic = "heuristic"
	AdvisorRemote    = "remote"
)

type SimulationConfig struct {
	FrameRate         int    `json:"frameRate"`
	DensityIntervalMs int    `json:"densityIntervalMs"`
	UpdateOrder       string `json:"updateOrder"`
	// Seed drives every random choice of the world; 0 picks one from the clock.
	Seed uint64 `json:"seed"`
}

type MapSettings struct {
	flock.MapConfig
	Terrain     string `json:"terrain"`
	TerrainSeed int64  `json:"terrainSeed"`
}

type PopulationConfig struct {
	// FallbackCount agents are spawned locally while no store-backed agent exists.
	FallbackCount  int    `json:"fallbackCount"`
	StorePath      string `json:"storePath"`
	PollIntervalMs int    `json:"pollIntervalMs"`
}

type ServerConfig struct {
	Addr      string `json:"addr"`
	RecordDir string `json:"recordDir"`
}

type AdvisorConfig struct {
	Mode      string `json:"mode"`
	URL       string `json:"url"`
	TimeoutMs int    `json:"timeoutMs"`
}

type ViewerConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Config is the whole runtime configuration. Files only need to carry the
// values that differ from DefaultConfig.
type Config struct {
	Simulation SimulationConfig `json:"simulation"`
	Parameters flock.Parameters `json:"parameters"`
	Map        MapSettings      `json:"map"`
	Population PopulationConfig `json:"population"`
	Server     ServerConfig     `json:"server"`
	Advisor    AdvisorConfig    `json:"advisor"`
	Viewer     ViewerConfig     `json:"viewer"`
}

func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			FrameRate:         60,
			DensityIntervalMs: 1000,
			UpdateOrder:       flock.OrderSimultaneous.String(),
		},
		Parameters: flock.DefaultParameters(),
		Map: MapSettings{
			MapConfig: flock.DefaultMapConfig(),
			Terrain:   TerrainFlat,
		},
		Population: PopulationConfig{
			FallbackCount:  100,
			PollIntervalMs: 500,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Advisor: AdvisorConfig{
			Mode:      AdvisorHeuristic,
			TimeoutMs: 30000,
		},
		Viewer: ViewerConfig{
			Width:  1100,
			Height: 800,
		},
	}
}

// Validate checks the values the schema cannot express.
func (c *Config) Validate() error {
	if err := c.Parameters.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Map.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := c.Order(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Simulation.FrameRate <= 0 {
		return fmt.Errorf("%w: frameRate must be > 0", ErrInvalidConfig)
	}
	if c.Population.FallbackCount < 0 {
		return fmt.Errorf("%w: fallbackCount must be >= 0", ErrInvalidConfig)
	}
	switch c.Map.Terrain {
	case "", TerrainFlat, TerrainPerlin:
	default:
		return fmt.Errorf("%w: unknown terrain %q", ErrInvalidConfig, c.Map.Terrain)
	}
	switch c.Advisor.Mode {
	case "", AdvisorHeuristic:
	case AdvisorRemote:
		if strings.TrimSpace(c.Advisor.URL) == "" {
			return fmt.Errorf("%w: remote advisor needs a url", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown advisor mode %q", ErrInvalidConfig, c.Advisor.Mode)
	}
	return nil
}

// Order parses the configured update order.
func (c *Config) Order() (flock.UpdateOrder, error) {
	return flock.ParseUpdateOrder(c.Simulation.UpdateOrder)
}

// FrameInterval is the wall-clock time between two frames.
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(max(c.Simulation.FrameRate, 1))
}

// DensityInterval is the publication period of the density grid.
func (c *Config) DensityInterval() time.Duration {
	return time.Duration(c.Simulation.DensityIntervalMs) * time.Millisecond
}

// PollInterval is the period of the configuration store watcher.
func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Population.PollIntervalMs) * time.Millisecond
}

// AdvisorTimeout bounds a single remote advisor call.
func (c *Config) AdvisorTimeout() time.Duration {
	return time.Duration(c.Advisor.TimeoutMs) * time.Millisecond
}

// LoadConfig reads a JSON or YAML file (chosen by extension), validates it
// against the embedded schema and overlays it on DefaultConfig.
func LoadConfig(configFile string) (*Config, error) {
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(configFile)) {
	case ".yaml", ".yml":
		b, err = yamlToJSON(b)
		if err != nil {
			return nil, err
		}
	}
	return ParseConfig(b)
}

// ParseConfig validates a JSON document and overlays it on DefaultConfig.
func ParseConfig(b []byte) (*Config, error) {
	sch, err := jsonschema.CompileString("config.schema.json", configSchema)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func yamlToJSON(b []byte) ([]byte, error) {
	var doc interface{}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode config yaml: %w", err)
	}
	if doc == nil {
		doc = map[string]interface{}{}
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to convert config yaml: %w", err)
	}
	return out, nil
}
