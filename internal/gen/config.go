package gen

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Config is the directive file consumed by mkcygcall. It names the DLL
// whose exports get a lazy proc table and the package the table is
// generated into.
type Config struct {
	// DLL is the runtime DLL name, e.g. "cygwin1.dll".
	DLL string `yaml:"dll"`
	// DLLFunc optionally names a function in the target package returning
	// the DLL to load. When empty the DLL name is hardcoded.
	DLLFunc string `yaml:"dllfunc"`
	// Package is the Go package the generated file belongs to.
	Package string `yaml:"package"`
	// Build is the build constraint of the generated file, e.g. "windows".
	Build string `yaml:"build"`
	// Procs lists the exported symbols to resolve, in output order.
	Procs []string `yaml:"procs"`
}

// LoadConfig reads and validates a directive file.
func LoadConfig(fsys afero.Fs, path string) (*Config, error) {
	raw, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading directives: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parsing directives: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.DLL == "" {
		return fmt.Errorf("directive file must name a dll")
	}
	if c.Package == "" {
		return fmt.Errorf("directive file must name a package")
	}
	if len(c.Procs) == 0 {
		return fmt.Errorf("directive file lists no procs")
	}
	seen := make(map[string]struct{}, len(c.Procs))
	for _, p := range c.Procs {
		if p == "" {
			return fmt.Errorf("empty proc name")
		}
		if _, dup := seen[p]; dup {
			return fmt.Errorf("duplicate proc %q", p)
		}
		seen[p] = struct{}{}
	}
	return nil
}

// Directives flattens the config into the ordered list recorded in the
// build stamp. Any change to it invalidates prior output.
func (c *Config) Directives() []string {
	d := []string{
		"dll=" + c.DLL,
		"dllfunc=" + c.DLLFunc,
		"package=" + c.Package,
		"build=" + c.Build,
	}
	for _, p := range c.Procs {
		d = append(d, "proc="+p)
	}
	return d
}
