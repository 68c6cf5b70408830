// Package snapshot takes rotating point-in-time backups of the sticker
// directory.
//
// A backup is a full copy of the directory into a sibling directory named
// <prefix>_<YYYYMMDD_HHMMSS>. Before copying, existing snapshots are evicted
// oldest-first until at most retention-1 remain, so the retention cap holds
// after the new snapshot is created.
//
// Push operations destructively rewrite local files (uploaded files are
// deleted, repaired files are replaced) and the remote operations are not
// transactionally reversible, so a push must not proceed without a
// successful backup. Snapshots are immutable once created; only eviction
// ever removes one.
package snapshot
