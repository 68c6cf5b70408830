package pack

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"sticker-manager/core/encoder"
	"sticker-manager/core/index"
	"sticker-manager/core/limiter"
	"sticker-manager/core/snapshot"
	"sticker-manager/core/telegram"

	"go.uber.org/zap"
)

// Service drives the pull and push flows for one pack directory.
type Service struct {
	log     *zap.Logger
	client  telegram.Client
	limiter *limiter.Limiter
	encoder encoder.Encoder
	snaps   *snapshot.Manager
	packDir string
}

// NewService wires a Service for the pack rooted at packDir.
func NewService(
	log *zap.Logger,
	client telegram.Client,
	lim *limiter.Limiter,
	enc encoder.Encoder,
	snaps *snapshot.Manager,
	packDir string,
) *Service {
	return &Service{
		log:     log,
		client:  client,
		limiter: lim,
		encoder: enc,
		snaps:   snaps,
		packDir: packDir,
	}
}

// IndexPath returns the descriptor path of the pack directory.
func (s *Service) IndexPath() string {
	return filepath.Join(s.packDir, IndexFileName)
}

// LoadIndex loads and validates the pack descriptor. A missing descriptor
// is a local precondition failure; a corrupted one is never repaired.
func (s *Service) LoadIndex() (*index.Pack, error) {
	path := s.IndexPath()
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("index file not found in %s, run init first: %w", s.packDir, err)
	}
	return index.Load(path)
}

// FetchRemote retrieves the remote inventory through the rate limiter.
// A set that does not exist yet returns (nil, nil): that is a state, not an
// error.
func (s *Service) FetchRemote(ctx context.Context, name string) (*telegram.StickerSet, error) {
	var set *telegram.StickerSet
	err := s.limiter.Do(ctx, func() error {
		fetched, err := s.client.GetStickerSet(ctx, name)
		if err != nil {
			return err
		}
		set = fetched
		return nil
	})
	if err != nil {
		if errors.Is(err, telegram.ErrSetNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return set, nil
}

// downloadSticker fetches the canonical remote bytes of one sticker and
// writes them to dir as <uniqueID>.<ext>, with the extension sniffed from
// the content. Returns the written path.
func (s *Service) downloadSticker(ctx context.Context, dir, fileID, uniqueID string) (string, error) {
	var file *telegram.File
	err := s.limiter.Do(ctx, func() error {
		resolved, err := s.client.GetFile(ctx, fileID)
		if err != nil {
			return err
		}
		file = resolved
		return nil
	})
	if err != nil {
		return "", err
	}

	var data []byte
	err = s.limiter.Do(ctx, func() error {
		body, err := s.client.DownloadFile(ctx, file.FilePath)
		if err != nil {
			return err
		}
		data = body
		return nil
	})
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s.%s", uniqueID, encoder.SniffExtension(data))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	s.log.Info("downloaded sticker", zap.String("file", name))
	return path, nil
}
