package specparse

import (
	"embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed registry/*.yaml
var registryFS embed.FS

// ChannelRegistry holds the channel naming tables: measurement kind
// names ("voltage", "accel", ...) and modifier names ("x", "ir", ...).
type ChannelRegistry struct {
	Kinds     []string `yaml:"kinds"`
	Modifiers []string `yaml:"modifiers"`
}

// ParseChannelRegistry parses a channel registry from YAML bytes.
func ParseChannelRegistry(data []byte) (*ChannelRegistry, error) {
	var reg ChannelRegistry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parsing channel registry: %w", err)
	}
	return &reg, nil
}

// LoadChannelRegistry loads and parses a channel registry from a file.
func LoadChannelRegistry(path string) (*ChannelRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseChannelRegistry(data)
}

var (
	defaultOnce sync.Once
	defaultReg  *ChannelRegistry
)

// DefaultChannelRegistry returns the registry embedded in the library.
// The embedded table is validated at build time; a parse failure here
// means a broken release and panics.
func DefaultChannelRegistry() *ChannelRegistry {
	defaultOnce.Do(func() {
		data, err := registryFS.ReadFile("registry/channel-names.yaml")
		if err != nil {
			panic(fmt.Sprintf("embedded channel registry missing: %v", err))
		}
		defaultReg, err = ParseChannelRegistry(data)
		if err != nil {
			panic(fmt.Sprintf("embedded channel registry invalid: %v", err))
		}
	})
	return defaultReg
}
