// Package internal holds the project configuration for AgentSync.
package internal

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/agentsync/internal/security"
	"github.com/starford/agentsync/internal/tool"
)

// ConfigFile is the project configuration file name. Its presence marks
// the project root.
const ConfigFile = "agentsync.yaml"

// Config represents the project configuration consumed by a sync pass:
// which tools are enabled and which base directories receive tool files.
type Config struct {
	Tools    []string `yaml:"tools"`
	BaseDirs []string `yaml:"baseDirs"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Tools, validation.Required, validation.Each(validation.By(validTool))),
		validation.Field(&c.BaseDirs, validation.By(validBaseDirs)),
	)
}

func validTool(value interface{}) error {
	name, _ := value.(string)
	if _, err := tool.Parse(name); err != nil {
		return err
	}
	return nil
}

func validBaseDirs(value interface{}) error {
	dirs, ok := value.([]string)
	if !ok {
		return fmt.Errorf("baseDirs must be a list of paths")
	}
	return security.CheckBaseDirs(dirs)
}

// EnabledTools resolves the configured tool names.
func (c *Config) EnabledTools() ([]tool.Tool, error) {
	out := make([]tool.Tool, 0, len(c.Tools))
	for _, name := range c.Tools {
		t, err := tool.Parse(name)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// NewDefaultConfig returns a new Config with all tools enabled and a
// single base directory at the project root.
func NewDefaultConfig() *Config {
	return &Config{
		Tools:    []string{tool.Cursor.Name(), tool.Copilot.Name(), tool.Windsurf.Name()},
		BaseDirs: []string{"."},
	}
}
