package snapshot

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Config holds configuration for snapshot rotation.
type Config struct {
	// Prefix is the snapshot directory name prefix.
	Prefix string `mapstructure:"prefix" default:"snapshot"`
	// Retention is the maximum number of snapshots kept.
	Retention int `mapstructure:"retention" default:"4"`
}

// Manager creates and rotates snapshots inside a base directory.
type Manager struct {
	baseDir   string
	prefix    string
	retention int

	// now is injectable for tests.
	now func() time.Time
}

// New creates a Manager writing snapshots into baseDir.
func New(baseDir string, cfg Config) *Manager {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "snapshot"
	}
	retention := cfg.Retention
	if retention <= 0 {
		retention = 4
	}
	return &Manager{
		baseDir:   baseDir,
		prefix:    prefix,
		retention: retention,
		now:       time.Now,
	}
}

// List returns existing snapshot paths sorted oldest-first. The timestamp
// name format makes lexicographic order chronological.
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list snapshots in %s: %w", m.baseDir, err)
	}
	var snapshots []string
	for _, entry := range entries {
		if entry.IsDir() && strings.HasPrefix(entry.Name(), m.prefix+"_") {
			snapshots = append(snapshots, filepath.Join(m.baseDir, entry.Name()))
		}
	}
	sort.Strings(snapshots)
	return snapshots, nil
}

// Backup copies stickerDir into a new timestamp-named snapshot directory and
// returns its path. Older snapshots are evicted first so that at most
// retention snapshots exist afterwards, the new one included.
func (m *Manager) Backup(stickerDir string) (string, error) {
	if _, err := os.Stat(stickerDir); err != nil {
		return "", fmt.Errorf("sticker directory unavailable: %w", err)
	}
	if err := os.MkdirAll(m.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create snapshot base %s: %w", m.baseDir, err)
	}

	snapshots, err := m.List()
	if err != nil {
		return "", err
	}
	for len(snapshots) >= m.retention {
		oldest := snapshots[0]
		if err := os.RemoveAll(oldest); err != nil {
			return "", fmt.Errorf("failed to evict snapshot %s: %w", oldest, err)
		}
		snapshots = snapshots[1:]
	}

	dest := filepath.Join(m.baseDir, fmt.Sprintf("%s_%s", m.prefix, m.now().Format("20060102_150405")))
	// Two backups within one second would collide on the name.
	for i := 2; ; i++ {
		if _, err := os.Stat(dest); os.IsNotExist(err) {
			break
		}
		dest = filepath.Join(m.baseDir, fmt.Sprintf("%s_%s-%d", m.prefix, m.now().Format("20060102_150405"), i))
	}

	if err := copyTree(stickerDir, dest); err != nil {
		os.RemoveAll(dest)
		return "", fmt.Errorf("failed to copy %s to snapshot: %w", stickerDir, err)
	}
	return dest, nil
}

// copyTree recursively copies the directory src to dst.
func copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
