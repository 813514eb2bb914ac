package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

func GetConfigHome() string {
	return filepath.Join(xdg.ConfigHome, "aiadvent")
}

// ResolvePath picks the config file to load: an explicit path wins,
// otherwise the file is looked up in the current directory and then in
// the aiadvent config home.
func ResolvePath(explicit string, filename string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(filename); err == nil {
		return filename
	}
	return filepath.Join(GetConfigHome(), filename)
}
