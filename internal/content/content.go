// Package content loads the landing page copy embedded in the binary.
package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/pragati-app/pragati-web/internal/assets"
	"github.com/pragati-app/pragati-web/internal/validate"
	"github.com/pragati-app/pragati-web/pkg/types"
)

//go:embed site.yaml
var siteYAML []byte

// Load returns the embedded site copy.
func Load() (types.Site, error) {
	return Parse(siteYAML)
}

// Parse decodes and validates site copy.
func Parse(b []byte) (types.Site, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return types.Site{}, fmt.Errorf("decode site copy: %w", err)
	}
	if err := validate.ValidateMap(raw); err != nil {
		return types.Site{}, fmt.Errorf("validate site copy: %w", err)
	}

	var site types.Site
	if err := yaml.Unmarshal(b, &site); err != nil {
		return types.Site{}, fmt.Errorf("decode site copy: %w", err)
	}
	if err := checkAssets(site); err != nil {
		return types.Site{}, err
	}
	seen := make(map[string]bool, len(site.Panels))
	for _, p := range site.Panels {
		if seen[p.ID] {
			return types.Site{}, fmt.Errorf("validate site copy: duplicate panel id %q", p.ID)
		}
		seen[p.ID] = true
	}
	return site, nil
}

// checkAssets rejects image references that are not embedded in the binary.
func checkAssets(site types.Site) error {
	names := make([]string, 0, len(site.Nav)+1)
	for _, item := range site.Nav {
		names = append(names, item.Icon)
	}
	names = append(names, site.TeamImage.Src)
	for _, name := range names {
		if !assets.Exists(name) {
			return fmt.Errorf("validate site copy: unknown asset %q", name)
		}
	}
	return nil
}
