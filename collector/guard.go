package collector

import (
	"fmt"
	"os"
)

// requiredPaths are the kernel interfaces the report cannot run without.
var requiredPaths = []string{"/proc/stat", "/proc/meminfo"}

// CheckPlatform verifies the kernel counter interfaces are readable.
// Runs before any sampling; the caller aborts on error.
func CheckPlatform() error {
	return checkPaths(requiredPaths...)
}

func checkPaths(paths ...string) error {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("required interface %s not readable: %w", path, err)
		}
		f.Close()
	}
	return nil
}
