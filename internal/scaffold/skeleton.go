package scaffold

import (
	"os"
	"path/filepath"
)

// skeletonDirs is the fixed directory layout every scaffolded project gets.
var skeletonDirs = []string{
	filepath.Join("components", "ui"),
	"lib",
	"hooks",
	"types",
}

// EnsureSkeleton creates the standard project subdirectories. Existing
// directories are left untouched.
func EnsureSkeleton(root string, useSrc bool) error {
	base := BaseDir(root, useSrc)
	for _, dir := range skeletonDirs {
		if err := os.MkdirAll(filepath.Join(base, dir), 0755); err != nil {
			return err
		}
	}
	return nil
}
