package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the config file looked up from the working directory upward.
const FileName = ".itsss.yml"

// ErrNotFound indicates no config file exists in the searched directories.
var ErrNotFound = errors.New("config file not found")

// FindConfigPath searches upward from a directory for a config file.
func FindConfigPath(startDir string) (string, error) {
	dir := strings.TrimSpace(startDir)
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		dir = wd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	dir = abs

	for {
		configPath := filepath.Join(dir, FileName)
		info, err := os.Stat(configPath)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %q is a directory", configPath)
			}
			return configPath, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat config path %q: %w", configPath, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no %s in %s or parent directories: %w", FileName, abs, ErrNotFound)
		}
		dir = parent
	}
}

// Resolve loads the config at path, or the nearest config file when path is
// empty. A missing file yields the defaults only when no path was given.
func Resolve(path string) (Config, string, error) {
	if strings.TrimSpace(path) != "" {
		abs, err := filepath.Abs(path)
		if err != nil {
			return Config{}, "", fmt.Errorf("resolve config path: %w", err)
		}
		cfg, err := Load(abs)
		return cfg, abs, err
	}
	found, err := FindConfigPath("")
	if errors.Is(err, ErrNotFound) {
		return Default(), "", nil
	}
	if err != nil {
		return Config{}, "", err
	}
	cfg, err := Load(found)
	return cfg, found, err
}
