//go:build linux || darwin

package mutate

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"plugin"
	"runtime"
	"sort"
	"strings"

	"github.com/dyne/passmut/internal/log"
)

// LoadPlugins opens each .so (or every .so in a directory) and registers the
// rules it exports as
//
//	var Rules = map[string]func(string, *rand.Rand) string{...}
//
// A plugin rule named like a built-in one replaces it; logger may be nil.
func LoadPlugins(paths []string, logger *log.Logger) error {
	for _, path := range paths {
		if path == "" {
			continue
		}
		resolved, err := resolvePluginPaths(path)
		if err != nil {
			return err
		}
		for _, pluginPath := range resolved {
			p, err := plugin.Open(pluginPath)
			if err != nil {
				return fmt.Errorf("open plugin %s: %w", pluginPath, err)
			}
			sym, err := p.Lookup("Rules")
			if err != nil {
				return fmt.Errorf("plugin %s: missing Rules symbol", pluginPath)
			}
			if err := registerPluginSymbol(pluginPath, sym, logger); err != nil {
				return err
			}
		}
	}
	return nil
}

func resolvePluginPaths(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		return pluginsInDir(path)
	}
	if err == nil {
		return []string{path}, nil
	}
	base := strings.TrimSuffix(path, ".so")
	cand := fmt.Sprintf("%s.%s.%s.so", base, runtime.GOOS, runtime.GOARCH)
	if fi, err := os.Stat(cand); err == nil && !fi.IsDir() {
		return []string{cand}, nil
	}
	return nil, fmt.Errorf("plugin not found: %s (tried %s)", path, cand)
}

func pluginsInDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read plugin dir %s: %w", dir, err)
	}
	var matches []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".so") {
			matches = append(matches, filepath.Join(dir, entry.Name()))
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no plugins found in %s", dir)
	}
	sort.Strings(matches)
	return matches, nil
}

func registerPluginSymbol(path string, sym any, logger *log.Logger) error {
	var rules map[string]func(string, *rand.Rand) string
	switch v := sym.(type) {
	case map[string]func(string, *rand.Rand) string:
		rules = v
	case *map[string]func(string, *rand.Rand) string:
		rules = *v
	default:
		return fmt.Errorf("plugin %s: Rules has incompatible type %T", path, sym)
	}
	for name, fn := range rules {
		if logger != nil && IsBuiltin(name) {
			logger.Debugf("plugin %s overrides built-in rule %s", path, name)
		}
		registerPlugin(name, fn)
	}
	return nil
}
