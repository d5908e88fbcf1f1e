package articles

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Extensions recognized as article documents when walking a directory.
var documentExtensions = map[string]bool{
	".html": true,
	".htm":  true,
	".json": true,
}

// CollectDocuments lists the article documents directly inside dir, sorted by
// name. This is the only enumeration step whose failure is fatal to a run.
func CollectDocuments(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read directory %s", dir)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if documentExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
