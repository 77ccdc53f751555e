//go:build !linux && !darwin

package mutate

import (
	"fmt"

	"github.com/dyne/passmut/internal/log"
)

func LoadPlugins(paths []string, logger *log.Logger) error {
	if len(paths) == 0 {
		return nil
	}
	return fmt.Errorf("plugins are only supported on linux and darwin")
}
