package app

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// fileConfig mirrors Config with pointer fields so absent keys can be told
// apart from zero values.
type fileConfig struct {
	Width   *int     `json:"width"`
	Height  *int     `json:"height"`
	Scale   *int     `json:"scale"`
	TPS     *int     `json:"tps"`
	GPS     *int     `json:"gps"`
	Seed    *int64   `json:"seed"`
	Density *float64 `json:"density"`
	Pattern *string  `json:"pattern"`
}

// ApplyFile overlays values from a JSON config file. Flags named in set were
// given explicitly on the command line and keep their values.
func (c *Config) ApplyFile(path string, set map[string]bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}

	if fc.Width != nil && !set["width"] {
		c.Width = *fc.Width
	}
	if fc.Height != nil && !set["height"] {
		c.Height = *fc.Height
	}
	if fc.Scale != nil && !set["scale"] {
		c.Scale = *fc.Scale
	}
	if fc.TPS != nil && !set["tps"] {
		c.TPS = *fc.TPS
	}
	if fc.GPS != nil && !set["gps"] {
		c.GPS = *fc.GPS
	}
	if fc.Seed != nil && !set["seed"] {
		c.Seed = *fc.Seed
	}
	if fc.Density != nil && !set["density"] {
		c.Density = *fc.Density
	}
	if fc.Pattern != nil && !set["pattern"] {
		c.Pattern = *fc.Pattern
	}
	return nil
}
