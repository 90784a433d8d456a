// Package config loads and validates the scheduling configuration.
// Every tunable the core consumes is supplied here; call sites never
// hardcode their own values.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/ability"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/calibrate"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/priority"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/queue"
	"github.com/tomatokenizer-web/LOGOSproject-sub002/internal/spacedrep"
)

// DefaultSessionSize is the session slice size when none is configured.
const DefaultSessionSize = 20

var (
	ErrSchemaViolation = errors.New("config: file violates schema")
	ErrBadNewItemRatio = errors.New("config: new_item_ratio must be in [0,1]")
	ErrBadSessionSize  = errors.New("config: session_size must be positive")
)

// Config is the full externally supplied configuration surface.
type Config struct {
	Ability     ability.Config            `json:"ability"`
	Scheduler   spacedrep.SchedulerConfig `json:"scheduler"`
	Calibration calibrate.Config          `json:"calibration"`
	Priority    priority.Config           `json:"priority"`

	// Strategy selects the adaptive item-selection method.
	Strategy ability.Strategy `json:"selection_strategy"`

	SessionSize  int     `json:"session_size"`
	NewItemRatio float64 `json:"new_item_ratio"`
}

// Default returns the stock configuration. Subsystem zero values fill
// their own documented defaults at construction time.
func Default() Config {
	return Config{
		Strategy:     ability.FisherInformation,
		SessionSize:  DefaultSessionSize,
		NewItemRatio: queue.DefaultNewItemRatio,
	}
}

// Validate checks the cross-cutting fields a schema cannot express and
// the semantic constraints on subsystem settings.
func (c Config) Validate() error {
	if c.SessionSize <= 0 {
		return fmt.Errorf("%w: %d", ErrBadSessionSize, c.SessionSize)
	}
	if c.NewItemRatio < 0 || c.NewItemRatio > 1 {
		return fmt.Errorf("%w: %f", ErrBadNewItemRatio, c.NewItemRatio)
	}
	if !c.Strategy.IsValid() {
		return fmt.Errorf("%w: %d", ability.ErrUnknownStrategy, c.Strategy)
	}
	if c.Priority.Weights != nil {
		if err := c.Priority.Weights.Validate(); err != nil {
			return err
		}
	}
	if c.Scheduler.Weights != nil {
		if err := c.Scheduler.Weights.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Load reads a JSON configuration file, checks it against the embedded
// schema, and overlays it on the defaults. Fields absent from the file
// keep their default values.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(raw)
}

// Parse validates and decodes raw JSON configuration bytes.
func Parse(raw []byte) (Config, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return Config{}, fmt.Errorf("config: invalid JSON: %w", err)
	}

	schema, err := compiledSchema()
	if err != nil {
		return Config{}, err
	}
	if err := schema.Validate(doc); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}

	cfg := Default()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var (
	schemaOnce     sync.Once
	schemaCompiled *jsonschema.Schema
	schemaErr      error
)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var parsed any
		if err := json.Unmarshal([]byte(configSchema), &parsed); err != nil {
			schemaErr = fmt.Errorf("config: parse embedded schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const url = "schema://config.json"
		if err := c.AddResource(url, parsed); err != nil {
			schemaErr = fmt.Errorf("config: add schema resource: %w", err)
			return
		}
		schemaCompiled, schemaErr = c.Compile(url)
	})
	return schemaCompiled, schemaErr
}
