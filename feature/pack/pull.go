package pack

import (
	"context"
	"fmt"
	"os"

	"sticker-manager/core/diff"
	"sticker-manager/core/index"
	"sticker-manager/core/telegram"

	"go.uber.org/zap"
)

// Pull synchronizes the local directory from the remote set. The remote is
// the source of truth: local orphans are deleted, drifted files are
// re-downloaded, missing files are fetched, and the descriptor is rewritten
// to mirror the remote inventory.
func (s *Service) Pull(ctx context.Context) error {
	pack, err := s.LoadIndex()
	if err != nil {
		return err
	}

	set, err := s.FetchRemote(ctx, pack.Name)
	if err != nil {
		return err
	}
	if set == nil {
		return fmt.Errorf("sticker set %s not created yet, push first", pack.Name)
	}

	return s.syncIndex(ctx, pack, set)
}

// SyncExisting runs the pull flow only when the remote set already exists,
// reporting whether it did. Used right after a pack directory is
// initialized, where an absent set is the expected state.
func (s *Service) SyncExisting(ctx context.Context) (bool, error) {
	pack, err := s.LoadIndex()
	if err != nil {
		return false, err
	}
	set, err := s.FetchRemote(ctx, pack.Name)
	if err != nil {
		return false, err
	}
	if set == nil {
		return false, nil
	}
	return true, s.syncIndex(ctx, pack, set)
}

// DownloadSet fetches every sticker of a remote set into destDir without
// touching any descriptor. The set must exist.
func (s *Service) DownloadSet(ctx context.Context, name, destDir string) error {
	set, err := s.FetchRemote(ctx, name)
	if err != nil {
		return err
	}
	if set == nil {
		return fmt.Errorf("sticker set not found: %s", name)
	}
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", destDir, err)
	}
	if err := CleanDuplicateStems(s.log, destDir); err != nil {
		return err
	}
	for _, sticker := range set.Stickers {
		if _, err := s.downloadSticker(ctx, destDir, sticker.FileID, sticker.FileUniqueID); err != nil {
			return err
		}
	}
	s.log.Info("downloaded sticker set",
		zap.String("pack", name),
		zap.Int("stickers", len(set.Stickers)))
	return nil
}

// syncIndex applies the remote inventory to the local directory and
// descriptor. The descriptor is persisted only after all file operations
// succeeded, so a failed sync leaves the previous descriptor durable.
func (s *Service) syncIndex(ctx context.Context, pack *index.Pack, set *telegram.StickerSet) error {
	stickerDir, err := EnsureStickerDir(s.packDir)
	if err != nil {
		return err
	}
	if err := CleanDuplicateStems(s.log, stickerDir); err != nil {
		return err
	}

	local, err := ListLocalFiles(stickerDir)
	if err != nil {
		return err
	}
	remote := remoteDiffItems(set)

	// Remote is authoritative here, so the delta reads inversely:
	// local-only keys are deleted, remote-only keys are downloaded, and
	// drifted keys are replaced by the remote copy.
	delta := diff.Compute(local, remote)

	for _, file := range delta.ToUpload {
		s.log.Info("cleaning up local orphan", zap.String("file", file.Path))
		if err := os.Remove(file.Path); err != nil {
			return fmt.Errorf("failed to delete %s: %w", file.Path, err)
		}
	}

	for _, fix := range delta.ToFix {
		s.log.Warn("file size mismatch, re-downloading",
			zap.String("file", fix.Local.Path),
			zap.Int64("local_size", fix.Local.Size),
			zap.Int64("remote_size", fix.Remote.Size))
		if err := os.Remove(fix.Local.Path); err != nil {
			return fmt.Errorf("failed to delete %s: %w", fix.Local.Path, err)
		}
		if _, err := s.downloadSticker(ctx, stickerDir, fix.Remote.FileID, fix.Remote.UniqueID); err != nil {
			return err
		}
	}

	for _, item := range delta.ToDelete {
		if _, err := s.downloadSticker(ctx, stickerDir, item.FileID, item.UniqueID); err != nil {
			return err
		}
	}

	// Mirror the remote inventory in provisioning order.
	emotes := make([]index.Emote, 0, len(set.Stickers))
	for _, sticker := range set.Stickers {
		emotes = append(emotes, index.Emote{
			Emoji:  sticker.Emoji,
			FileID: sticker.FileUniqueID,
		})
	}
	pack.Emotes = emotes

	if err := index.Save(s.IndexPath(), pack); err != nil {
		return err
	}
	s.log.Info("synchronization completed",
		zap.String("pack", pack.Name),
		zap.Int("stickers", len(emotes)))
	return nil
}

// remoteDiffItems converts a sticker set into the diff engine's inventory.
func remoteDiffItems(set *telegram.StickerSet) map[string]diff.RemoteItem {
	items := make(map[string]diff.RemoteItem, len(set.Stickers))
	for _, sticker := range set.Stickers {
		items[sticker.FileUniqueID] = diff.RemoteItem{
			FileID:   sticker.FileID,
			UniqueID: sticker.FileUniqueID,
			Size:     sticker.FileSize,
			Emoji:    sticker.Emoji,
		}
	}
	return items
}
