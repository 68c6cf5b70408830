// Package diff computes the delta between the local sticker inventory and
// the remote sticker set.
//
// Local files are keyed by their filename stem, remote items by their unique
// content id; once a sticker has been downloaded the two coincide, which is
// what makes the comparison content-addressed. The delta classifies every
// key into exactly one of three disjoint lists:
//
//   - ToUpload: local keys the remote has never seen
//   - ToDelete: remote items no longer present locally
//   - ToFix: keys present on both sides whose byte sizes disagree
//
// The direction of a fix depends on the flow: pull re-downloads the remote
// bytes, push replaces the local file with the canonical remote copy.
//
// The package also hosts the two pre-mutation guards: the 120-item capacity
// cap for incremental pushes and the 0/30 bounds on initial set creation.
// Both are checked before any remote mutation is issued, never after.
package diff
