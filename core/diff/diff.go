package diff

import (
	"errors"
	"fmt"
	"sort"
)

// Remote service limits.
const (
	// MaxSetSize is the remote cap on stickers per set.
	MaxSetSize = 120
	// MaxInitialBatch is the remote cap on stickers in one creation call.
	MaxInitialBatch = 30
)

var (
	// ErrCapacityExceeded means an incremental push would grow the set past
	// MaxSetSize; the push must abort before any mutation.
	ErrCapacityExceeded = errors.New("sticker set capacity exceeded")
	// ErrCreationBatchInvalid means an initial creation batch is empty or
	// larger than MaxInitialBatch.
	ErrCreationBatchInvalid = errors.New("invalid creation batch size")
)

// LocalFile is one file in the sticker directory. Key is the filename stem:
// a remote unique-content id once downloaded, or an arbitrary user-chosen
// name before first upload.
type LocalFile struct {
	Key  string
	Path string
	Size int64
}

// RemoteItem is one sticker in the remote set.
type RemoteItem struct {
	// FileID is the handle used for remote delete/download operations.
	FileID string
	// UniqueID is the content-addressed id stable across re-fetches.
	UniqueID string
	Size     int64
	Emoji    string
}

// Repair pairs a drifted local file with its remote counterpart.
type Repair struct {
	Local  LocalFile
	Remote RemoteItem
}

// Delta is the three-way classification of local vs remote inventories.
// The three lists are pairwise disjoint by construction.
type Delta struct {
	ToUpload []LocalFile
	ToDelete []RemoteItem
	ToFix    []Repair
}

// Empty reports whether the delta contains no work.
func (d Delta) Empty() bool {
	return len(d.ToUpload) == 0 && len(d.ToDelete) == 0 && len(d.ToFix) == 0
}

// Compute classifies every key of local and remote into the delta.
// Output order is lexicographic by key for deterministic application.
func Compute(local map[string]LocalFile, remote map[string]RemoteItem) Delta {
	var delta Delta

	for _, key := range sortedKeys(local) {
		file := local[key]
		item, ok := remote[key]
		switch {
		case !ok:
			delta.ToUpload = append(delta.ToUpload, file)
		case file.Size != item.Size:
			delta.ToFix = append(delta.ToFix, Repair{Local: file, Remote: item})
		}
	}

	for _, key := range sortedKeys(remote) {
		if _, ok := local[key]; !ok {
			delta.ToDelete = append(delta.ToDelete, remote[key])
		}
	}

	return delta
}

// CheckCapacity validates an incremental push against MaxSetSize. It must
// run before any delete or upload is issued so a push never partially
// applies past the limit.
func CheckCapacity(remoteCount int, delta Delta) error {
	resulting := remoteCount - len(delta.ToDelete) + len(delta.ToUpload)
	if resulting > MaxSetSize {
		return fmt.Errorf("%w: operation would result in %d stickers (limit %d)",
			ErrCapacityExceeded, resulting, MaxSetSize)
	}
	return nil
}

// CheckCreationBatch validates the size of an initial creation batch.
func CheckCreationBatch(count int) error {
	if count == 0 {
		return fmt.Errorf("%w: no stickers to create a set from", ErrCreationBatchInvalid)
	}
	if count > MaxInitialBatch {
		return fmt.Errorf("%w: %d stickers exceed the creation limit of %d",
			ErrCreationBatchInvalid, count, MaxInitialBatch)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
