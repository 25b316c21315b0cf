package tuning

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.yaml
var specsFS embed.FS

// Load returns the named spec file. A file on disk under tuning/ wins over
// the embedded copy so designers can edit values without rebuilding.
func Load(name string) ([]byte, error) {
	clean := cleanSpecPath(name)
	if data, err := os.ReadFile(diskSpecPath(clean)); err == nil {
		return data, nil
	}
	return specsFS.ReadFile(clean)
}

func cleanSpecPath(path string) string {
	if path == "" {
		return ""
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "tuning/"); ok {
		return after
	}
	return s
}

func diskSpecPath(clean string) string {
	return filepath.Join("tuning", filepath.FromSlash(clean))
}
