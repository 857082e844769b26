// Package gallery enumerates the image files served by the gallery and
// validates the filenames clients ask for.
package gallery

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// imageExtensions lists recognized image file extensions. SVG and ICO are
// served as opaque files; they are never decoded, so their metadata stays
// size-only.
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".bmp":  true,
	".svg":  true,
	".ico":  true,
	".tiff": true,
	".tif":  true,
}

// IsImageFile reports whether name has a recognized image extension.
func IsImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}

// Scan walks root and returns the relative paths of all image files,
// sorted lexicographically. Hidden directories are skipped.
func Scan(root string) ([]string, error) {
	var names []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return nil
		}

		if !IsImageFile(info.Name()) {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}

	sort.Strings(names)
	return names, nil
}

// SafeJoin resolves name against root, rejecting names that escape it.
// name uses forward slashes as produced by Scan.
func SafeJoin(root, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty filename")
	}
	cleaned := filepath.Clean(filepath.FromSlash(name))
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("filename escapes gallery root: %s", name)
	}
	return filepath.Join(root, cleaned), nil
}
