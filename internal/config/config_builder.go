package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error

	defaultPath func() (string, error)
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs:     make([]*StructuredConfig, 0, 4),
		defaultPath: DefaultConfigPath,
	}
}

// build merges the collected configs. Earlier configs win: mergo only fills
// fields that are still zero.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(flags *Flags) *configBuilder {
	b.configs = append(b.configs, flags.structured())
	return b
}

// withYAML loads the file named by the first source that sets one. Without
// an explicit path the default location is tried and silently skipped when
// absent.
func (b *configBuilder) withYAML() *configBuilder {
	var yamlPath string
	for _, cfg := range b.configs {
		if cfg.ConfigFilePath != "" {
			yamlPath = cfg.ConfigFilePath
			break
		}
	}

	explicit := yamlPath != ""
	if !explicit {
		p, err := b.defaultPath()
		if err != nil {
			return b
		}
		yamlPath = p
	}

	yamlCfg, err := parseYAML(yamlPath)
	if err != nil {
		if !explicit && errors.Is(err, ErrConfigFileNotFound) {
			return b
		}
		b.err = errors.Join(b.err, err)
		return b
	}
	yamlCfg.ConfigFilePath = yamlPath

	b.configs = append(b.configs, yamlCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, defaults())
	return b
}
