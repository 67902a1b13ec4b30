package tuning

import (
	"embed"
	"os"
	"path/filepath"
)

const specFile = "motion.yaml"

//go:embed motion.yaml
var specFS embed.FS

// read prefers the on-disk copy so edits take effect without rebuilding.
func read(name string) ([]byte, error) {
	if data, err := os.ReadFile(diskPath(name)); err == nil {
		return data, nil
	}
	return specFS.ReadFile(name)
}

func diskPath(name string) string {
	return filepath.Join("tuning", filepath.FromSlash(name))
}
