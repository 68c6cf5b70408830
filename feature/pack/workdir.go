package pack

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"sticker-manager/core/diff"

	"go.uber.org/zap"
)

// Well-known names inside a pack directory.
const (
	IndexFileName  = "index.json"
	StickerDirName = "stickers"
)

// EnsureStickerDir creates the sticker directory if it does not exist.
func EnsureStickerDir(packDir string) (string, error) {
	dir := filepath.Join(packDir, StickerDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create sticker directory %s: %w", dir, err)
	}
	return dir, nil
}

// CleanDuplicateStems removes files sharing a stem with different
// extensions. Two extensions for one stem means the content-addressed
// naming was violated; the lexicographically first file survives so the
// outcome does not depend on directory iteration order.
func CleanDuplicateStems(log *zap.Logger, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to list sticker directory %s: %w", dir, err)
	}

	byStem := map[string][]string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		stem := fileStem(entry.Name())
		byStem[stem] = append(byStem[stem], entry.Name())
	}

	for _, names := range byStem {
		if len(names) < 2 {
			continue
		}
		sort.Strings(names)
		for _, name := range names[1:] {
			log.Warn("deleting duplicate sticker file", zap.String("file", name))
			if err := os.Remove(filepath.Join(dir, name)); err != nil {
				return fmt.Errorf("failed to delete duplicate %s: %w", name, err)
			}
		}
	}
	return nil
}

// ListLocalFiles builds the local inventory keyed by filename stem.
func ListLocalFiles(dir string) (map[string]diff.LocalFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list sticker directory %s: %w", dir, err)
	}

	files := make(map[string]diff.LocalFile, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}
		key := fileStem(entry.Name())
		files[key] = diff.LocalFile{
			Key:  key,
			Path: filepath.Join(dir, entry.Name()),
			Size: info.Size(),
		}
	}
	return files, nil
}

func fileStem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
