package ingest

import (
	"path/filepath"
	"strings"

	"github.com/joseph-ayodele/order-mapper/constants"
)

// AllowedFile reports whether the path's extension maps to a supported
// extraction format.
func AllowedFile(path string) bool {
	return constants.MapExtToFormat(filepath.Ext(path)) != ""
}

func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// pickPrimary chooses which document anchors a multi-source item: the
// first filename containing "primary", otherwise the first in sorted
// order. Callers pass paths already sorted.
func pickPrimary(paths []string) int {
	for i, p := range paths {
		if strings.Contains(strings.ToLower(filepath.Base(p)), "primary") {
			return i
		}
	}
	return 0
}
