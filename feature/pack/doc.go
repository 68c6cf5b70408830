// Package pack orchestrates synchronization between the local sticker
// directory and the remote sticker set.
//
// The Service owns the pack descriptor for the duration of one command: it
// loads it, mutates it in memory, and persists it atomically once the
// remote-facing work succeeded. Two flows exist:
//
//   - Pull: the remote set is the source of truth. Locally orphaned files
//     are deleted, drifted files are re-downloaded, missing files are
//     fetched, and the descriptor's emote list is rewritten to mirror the
//     remote inventory exactly.
//   - Push: the local directory is the source of truth. A snapshot of the
//     directory is taken before anything else, because uploads delete their
//     local source file and the remote operations cannot be rolled back.
//     If the set does not exist yet, every local file becomes part of one
//     initial creation call; otherwise deletions, uploads, and repairs are
//     applied in that order, after the capacity guard. A push always ends
//     with a pull so the descriptor reflects the authoritative remote state.
//
// All remote calls go through the rate limiter and are issued strictly
// sequentially: the remote serializes same-session writes to one set, so
// concurrent issuance would only create ordering hazards.
package pack
