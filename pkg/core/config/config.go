// Package config loads the fixed site parameters from an optional YAML file.
// The model never reads these on its own; entrypoints load them once and
// pass the record into every call.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"feasibility_sim/pkg/core/model"
)

// EnvSiteConfig names the environment variable holding the YAML path used
// when LoadSite is called with an empty path.
const EnvSiteConfig = "SITE_CONFIG"

// LoadSite returns the site parameters, starting from DefaultSite and
// overlaying the YAML file at path (or $SITE_CONFIG when path is empty).
// A missing file is not an error — defaults apply; a present but unreadable
// or invalid file is.
func LoadSite(path string) (model.SiteParams, error) {
	site := model.DefaultSite()

	if path == "" {
		path = os.Getenv(EnvSiteConfig)
	}
	if path == "" {
		return site, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return site, nil
		}
		return site, fmt.Errorf("read site config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &site); err != nil {
		return site, fmt.Errorf("parse site config %s: %w", path, err)
	}
	if err := site.Validate(); err != nil {
		return site, fmt.Errorf("site config %s: %w", path, err)
	}
	return site, nil
}
