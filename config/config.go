// Package config loads the emulator configuration from TOML.
package config

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/ardnew/softscsi/device"
	"github.com/ardnew/softscsi/device/hd"
	"github.com/ardnew/softscsi/pkg"
	"github.com/ardnew/softscsi/scsi"
)

//go:embed softscsi.toml
var defaultConfigData string

// Config represents the entire TOML configuration structure
type Config struct {
	Device Device `toml:"device"`
	Log    Log    `toml:"log"`
}

// Device configures the emulated disk.
type Device struct {
	Kind     string `toml:"kind"`
	LUN      int    `toml:"lun"`
	Vendor   string `toml:"vendor"`
	Revision string `toml:"revision"`
}

// Log configures logging.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	var conf Config
	if _, err := toml.Decode(defaultConfigData, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse default config: %w", err)
	}
	return &conf, nil
}

// Load reads the configuration at path on top of the embedded default.
// An empty path returns the default. Unknown keys are an error.
func Load(path string) (*Config, error) {
	conf, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		md, err := toml.DecodeFile(path, conf)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML config at %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, key := range undecoded {
				keys[i] = key.String()
			}
			return nil, fmt.Errorf("unknown keys in %s: %s", path, strings.Join(keys, ", "))
		}
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	pkg.LogDebug(pkg.ComponentConfig, "config loaded",
		"path", path,
		"kind", conf.Device.Kind,
		"lun", conf.Device.LUN)

	return conf, nil
}

// Validate checks every field for a usable value.
func (c *Config) Validate() error {
	if _, err := device.ParseKind(c.Device.Kind); err != nil {
		return fmt.Errorf("device: %w", err)
	}
	if c.Device.LUN < 0 || c.Device.LUN > scsi.MaxLogicalUnit {
		return fmt.Errorf("device has invalid lun: %d (must be 0-%d)", c.Device.LUN, scsi.MaxLogicalUnit)
	}
	if len(c.Device.Vendor) > scsi.VendorSize {
		return fmt.Errorf("device vendor %q longer than %d characters", c.Device.Vendor, scsi.VendorSize)
	}
	if len(c.Device.Revision) > scsi.RevisionSize {
		return fmt.Errorf("device revision %q longer than %d characters", c.Device.Revision, scsi.RevisionSize)
	}
	if _, err := pkg.ParseLogLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if _, err := pkg.ParseLogFormat(c.Log.Format); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	return nil
}

// DiskOptions converts the device section into disk options.
// The configuration must be valid.
func (c *Config) DiskOptions() []hd.Option {
	kind, _ := device.ParseKind(c.Device.Kind)

	return []hd.Option{
		hd.WithKind(kind),
		hd.WithLUN(uint8(c.Device.LUN)),
		hd.WithVendor(c.Device.Vendor),
		hd.WithRevision(c.Device.Revision),
	}
}

// Apply configures the package logger from the log section.
func (c *Config) Apply() error {
	level, err := pkg.ParseLogLevel(c.Log.Level)
	if err != nil {
		return err
	}
	format, err := pkg.ParseLogFormat(c.Log.Format)
	if err != nil {
		return err
	}

	pkg.SetLogLevel(level)
	pkg.SetLogFormat(format)
	return nil
}
