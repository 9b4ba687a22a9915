package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// RunConfig mirrors the run command's flags, loadable from a YAML config
// file via viper so a reusable parameter set doesn't have to be retyped
// on every invocation (grounded on loadConfigFromStackDir in the
// cobra/viper example repo).
type RunConfig struct {
	Problem  string  `mapstructure:"problem" yaml:"problem"`
	Size     int     `mapstructure:"size" yaml:"size"`
	Policy   string  `mapstructure:"policy" yaml:"policy"`
	Seed     int64   `mapstructure:"seed" yaml:"seed"`
	TStart   float64 `mapstructure:"t_start" yaml:"t_start"`
	TStop    float64 `mapstructure:"t_stop" yaml:"t_stop"`
	Alpha    float64 `mapstructure:"alpha" yaml:"alpha"`
	Tenure   int     `mapstructure:"tenure" yaml:"tenure"`
	MaxIters int     `mapstructure:"max_iters" yaml:"max_iters"`
}

func defaultRunConfig() RunConfig {
	return RunConfig{
		Problem:  "qap",
		Size:     20,
		Policy:   "anneal",
		Seed:     1,
		TStart:   100.0,
		TStop:    0.01,
		Alpha:    0.995,
		Tenure:   7,
		MaxIters: 20000,
	}
}

// loadRunConfig reads cfgFile (if non-empty) over defaultRunConfig and
// returns the merged result. An empty cfgFile is not an error: the demo
// runs on its defaults.
func loadRunConfig(cfgFile string) (RunConfig, error) {
	cfg := defaultRunConfig()
	if cfgFile == "" {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return cfg, fmt.Errorf("reading config file %s: %w", cfgFile, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshalling config file %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// writeConfigTemplate marshals cfg directly with yaml.v3 and writes it to
// path, for `config init` to hand an operator a starting point they can
// then edit and feed back in through --config. This is the one write path
// in the demo that doesn't go through viper: loadRunConfig above needs
// viper's layered merge-over-defaults behavior, but emitting a template is
// a plain one-shot marshal and doesn't.
func writeConfigTemplate(path string, cfg RunConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config template: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config template %s: %w", path, err)
	}
	return nil
}
