package util

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// GetProjectRootDir returns the path as string to the project_root.
// It can be overridden by the env var PROJECT_ROOT_DIR.
func GetProjectRootDir() string {
	if val, ok := os.LookupEnv("PROJECT_ROOT_DIR"); ok {
		return val
	}

	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "../..")
}

// RunningInTest reports whether the current binary was built by "go test".
func RunningInTest() bool {
	return strings.HasSuffix(os.Args[0], ".test")
}
