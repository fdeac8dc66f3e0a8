package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/vk/projectgrid/internal/config"
	"github.com/vk/projectgrid/internal/hcl"
	"github.com/vk/projectgrid/internal/kts"
	"github.com/vk/projectgrid/internal/yamlcfg"
)

// SettingsFileNames are the file names looked up in the root directory when
// no settings file is given, in order of preference.
var SettingsFileNames = []string{
	"settings.hcl",
	"settings.gradle.kts",
	"settings.yaml",
	"settings.yml",
}

// loaderFor picks the settings loader from the file name.
func loaderFor(path string) (config.Loader, error) {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".hcl"):
		return hcl.NewLoader(), nil
	case strings.HasSuffix(name, ".kts"):
		return kts.NewLoader(), nil
	case strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
		return yamlcfg.NewLoader(), nil
	default:
		return nil, fmt.Errorf("cannot tell the format of settings file '%s': expected .hcl, .kts, .yaml or .yml", path)
	}
}
