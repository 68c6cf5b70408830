package diff

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func localFile(key string, size int64) LocalFile {
	return LocalFile{Key: key, Path: "stickers/" + key + ".png", Size: size}
}

func remoteItem(uniqueID string, size int64) RemoteItem {
	return RemoteItem{FileID: "file-" + uniqueID, UniqueID: uniqueID, Size: size, Emoji: "😀"}
}

func TestComputePushScenario(t *testing.T) {
	// Local: abc123 (500), def456 (900). Remote: abc123 (500), ghi789 (300).
	local := map[string]LocalFile{
		"abc123": localFile("abc123", 500),
		"def456": localFile("def456", 900),
	}
	remote := map[string]RemoteItem{
		"abc123": remoteItem("abc123", 500),
		"ghi789": remoteItem("ghi789", 300),
	}

	delta := Compute(local, remote)

	require.Len(t, delta.ToUpload, 1)
	assert.Equal(t, "def456", delta.ToUpload[0].Key)
	require.Len(t, delta.ToDelete, 1)
	assert.Equal(t, "file-ghi789", delta.ToDelete[0].FileID)
	assert.Empty(t, delta.ToFix)
}

func TestComputeSizeDrift(t *testing.T) {
	local := map[string]LocalFile{
		"abc123": localFile("abc123", 500),
		"def456": localFile("def456", 900),
	}
	remote := map[string]RemoteItem{
		"abc123": remoteItem("abc123", 400),
		"ghi789": remoteItem("ghi789", 300),
	}

	delta := Compute(local, remote)

	require.Len(t, delta.ToFix, 1)
	assert.Equal(t, "abc123", delta.ToFix[0].Local.Key)
	assert.Equal(t, "file-abc123", delta.ToFix[0].Remote.FileID)
}

func TestComputeClassifiesEveryKeyExactlyOnce(t *testing.T) {
	local := map[string]LocalFile{}
	remote := map[string]RemoteItem{}
	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("local%02d", i)
		local[key] = localFile(key, int64(100+i))
	}
	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("remote%02d", i)
		remote[key] = remoteItem(key, int64(200+i))
	}
	for i := 0; i < 20; i++ {
		key := fmt.Sprintf("both%02d", i)
		size := int64(300 + i)
		local[key] = localFile(key, size)
		if i%3 == 0 {
			size += 7 // drifted
		}
		remote[key] = remoteItem(key, size)
	}

	delta := Compute(local, remote)

	seen := map[string]int{}
	for _, f := range delta.ToUpload {
		seen[f.Key]++
	}
	for _, r := range delta.ToDelete {
		seen[r.UniqueID]++
	}
	for _, fix := range delta.ToFix {
		seen[fix.Local.Key]++
	}

	// Pairwise disjoint: no key classified twice.
	for key, count := range seen {
		assert.Equal(t, 1, count, "key %s classified %d times", key, count)
	}

	// Every key of local ∪ remote is either classified or present on both
	// sides with equal sizes.
	union := map[string]struct{}{}
	for key := range local {
		union[key] = struct{}{}
	}
	for key := range remote {
		union[key] = struct{}{}
	}
	for key := range union {
		if _, classified := seen[key]; classified {
			continue
		}
		lf, inLocal := local[key]
		ri, inRemote := remote[key]
		require.True(t, inLocal && inRemote, "unclassified key %s must exist on both sides", key)
		assert.Equal(t, lf.Size, ri.Size, "unclassified key %s must have matching sizes", key)
	}
}

func TestComputeDeterministicOrder(t *testing.T) {
	local := map[string]LocalFile{
		"zz": localFile("zz", 1),
		"aa": localFile("aa", 1),
		"mm": localFile("mm", 1),
	}
	delta := Compute(local, nil)

	require.Len(t, delta.ToUpload, 3)
	assert.Equal(t, "aa", delta.ToUpload[0].Key)
	assert.Equal(t, "mm", delta.ToUpload[1].Key)
	assert.Equal(t, "zz", delta.ToUpload[2].Key)
}

func TestCheckCapacity(t *testing.T) {
	tests := []struct {
		name        string
		remoteCount int
		uploads     int
		deletes     int
		wantErr     bool
	}{
		{name: "under limit", remoteCount: 100, uploads: 10, deletes: 0, wantErr: false},
		{name: "exactly at limit", remoteCount: 110, uploads: 10, deletes: 0, wantErr: false},
		{name: "over limit", remoteCount: 110, uploads: 15, deletes: 0, wantErr: true},
		{name: "deletes make room", remoteCount: 120, uploads: 10, deletes: 10, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var delta Delta
			for i := 0; i < tt.uploads; i++ {
				delta.ToUpload = append(delta.ToUpload, localFile(fmt.Sprintf("u%d", i), 1))
			}
			for i := 0; i < tt.deletes; i++ {
				delta.ToDelete = append(delta.ToDelete, remoteItem(fmt.Sprintf("d%d", i), 1))
			}

			err := CheckCapacity(tt.remoteCount, delta)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrCapacityExceeded)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCheckCreationBatch(t *testing.T) {
	assert.ErrorIs(t, CheckCreationBatch(0), ErrCreationBatchInvalid)
	assert.NoError(t, CheckCreationBatch(1))
	assert.NoError(t, CheckCreationBatch(30))
	assert.ErrorIs(t, CheckCreationBatch(31), ErrCreationBatchInvalid)
}
