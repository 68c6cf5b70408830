package pack

import (
	"context"
	"fmt"
	"os"
	"sort"

	"sticker-manager/core/diff"
	"sticker-manager/core/encoder"
	"sticker-manager/core/index"
	"sticker-manager/core/telegram"

	"go.uber.org/zap"
)

// Push applies local changes to the remote set, creating it if necessary,
// and finishes with a pull so the descriptor mirrors the authoritative
// remote state. The sticker directory is snapshotted before any mutation;
// a failed backup aborts the push.
func (s *Service) Push(ctx context.Context) error {
	pack, err := s.LoadIndex()
	if err != nil {
		return err
	}

	stickerDir, err := EnsureStickerDir(s.packDir)
	if err != nil {
		return err
	}
	if err := CleanDuplicateStems(s.log, stickerDir); err != nil {
		return err
	}

	snapshotPath, err := s.snaps.Backup(stickerDir)
	if err != nil {
		return fmt.Errorf("backup failed, push aborted: %w", err)
	}
	s.log.Info("sticker directory backed up", zap.String("snapshot", snapshotPath))

	set, err := s.FetchRemote(ctx, pack.Name)
	if err != nil {
		return err
	}

	if set == nil {
		if err := s.createInitialSet(ctx, pack, stickerDir); err != nil {
			return err
		}
	} else {
		if err := s.pushIncremental(ctx, pack, stickerDir, set); err != nil {
			return err
		}
	}

	// Reindex: the on-disk descriptor must reflect the remote state after
	// every push.
	set, err = s.FetchRemote(ctx, pack.Name)
	if err != nil {
		return err
	}
	if set == nil {
		return fmt.Errorf("sticker set %s missing after push", pack.Name)
	}
	return s.syncIndex(ctx, pack, set)
}

// createInitialSet encodes every local file and issues one creation call.
// Any encoding failure aborts the whole creation; no partial set is ever
// created.
func (s *Service) createInitialSet(ctx context.Context, pack *index.Pack, stickerDir string) error {
	local, err := ListLocalFiles(stickerDir)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(local))
	for key := range local {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	if err := diff.CheckCreationBatch(len(keys)); err != nil {
		return err
	}

	scale := encoder.ScaleFor(pack.StickerType)
	stickers := make([]telegram.InputSticker, 0, len(keys))
	for _, key := range keys {
		payload, err := s.encoder.Encode(ctx, local[key].Path, scale)
		if err != nil {
			return fmt.Errorf("failed to encode %s, creation aborted: %w", local[key].Path, err)
		}
		stickers = append(stickers, *payload)
	}

	operatorID, err := operatorNumericID(pack)
	if err != nil {
		return err
	}

	s.log.Info("creating sticker set",
		zap.String("pack", pack.Name),
		zap.Int("stickers", len(stickers)))
	return s.limiter.Do(ctx, func() error {
		return s.client.CreateStickerSet(ctx, operatorID, pack.Name, pack.Title, pack.StickerType, stickers)
	})
}

// pushIncremental reconciles an existing remote set with the local
// directory: title first, then deletions, uploads, repairs. The capacity
// guard runs before any mutation.
func (s *Service) pushIncremental(ctx context.Context, pack *index.Pack, stickerDir string, set *telegram.StickerSet) error {
	local, err := ListLocalFiles(stickerDir)
	if err != nil {
		return err
	}
	remote := remoteDiffItems(set)
	delta := diff.Compute(local, remote)

	if !delta.Empty() {
		s.log.Info("changes detected",
			zap.Int("to_upload", len(delta.ToUpload)),
			zap.Int("to_delete", len(delta.ToDelete)),
			zap.Int("to_fix", len(delta.ToFix)))
	}

	if err := diff.CheckCapacity(len(remote), delta); err != nil {
		return err
	}

	if pack.Title != set.Title {
		err := s.limiter.Do(ctx, func() error {
			return s.client.SetTitle(ctx, pack.Name, pack.Title)
		})
		if err != nil {
			return err
		}
		s.log.Info("title updated", zap.String("title", pack.Title))
	}

	operatorID, err := operatorNumericID(pack)
	if err != nil {
		return err
	}

	for _, item := range delta.ToDelete {
		err := s.limiter.Do(ctx, func() error {
			return s.client.DeleteSticker(ctx, item.FileID)
		})
		if err != nil {
			// The trailing reindex reconverges the descriptor with
			// whatever state the remote settled on.
			s.log.Error("failed to delete sticker",
				zap.String("file_id", item.FileID), zap.Error(err))
			continue
		}
		s.log.Info("deleted sticker", zap.String("file_id", item.FileID))
	}

	scale := encoder.ScaleFor(pack.StickerType)
	for _, file := range delta.ToUpload {
		payload, err := s.encoder.Encode(ctx, file.Path, scale)
		if err != nil {
			s.log.Error("failed to encode sticker, skipping",
				zap.String("file", file.Path), zap.Error(err))
			continue
		}
		err = s.limiter.Do(ctx, func() error {
			return s.client.AddSticker(ctx, operatorID, pack.Name, *payload)
		})
		if err != nil {
			s.log.Error("failed to upload sticker",
				zap.String("file", file.Path), zap.Error(err))
			continue
		}
		// The remote copy is canonical now; the reindex pull will fetch it
		// back under its unique content id.
		if err := os.Remove(file.Path); err != nil {
			return fmt.Errorf("failed to remove uploaded file %s: %w", file.Path, err)
		}
		s.log.Info("uploaded sticker", zap.String("file", file.Key))
	}

	for _, fix := range delta.ToFix {
		if err := os.Remove(fix.Local.Path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove drifted file %s: %w", fix.Local.Path, err)
		}
		if _, err := s.downloadSticker(ctx, stickerDir, fix.Remote.FileID, fix.Remote.UniqueID); err != nil {
			// Repairs stop here; deletions and uploads already applied
			// stay applied. The snapshot is the recovery mechanism.
			return fmt.Errorf("failed to repair %s: %w", fix.Local.Key, err)
		}
		s.log.Info("repaired sticker", zap.String("file", fix.Local.Key))
	}

	return nil
}

func operatorNumericID(pack *index.Pack) (int64, error) {
	var id int64
	_, err := fmt.Sscanf(pack.OperatorID, "%d", &id)
	if err != nil {
		return 0, fmt.Errorf("invalid operator id %q in index: %w", pack.OperatorID, err)
	}
	return id, nil
}
