// Package index manages the local pack descriptor (index.json).
//
// The descriptor records the pack's identity (title, name, sticker type,
// operator id) and the emote list mirroring the remote sticker set. Identity
// fields are bound to the operating bot by a keyed integrity tag (lock_ns),
// so a descriptor edited by hand or moved between bots is rejected on load
// instead of silently re-targeting a foreign sticker set.
//
// # Integrity
//
// lock_ns is the hex HMAC-SHA256 of "name:sticker_type" keyed by the
// operator id. Load recomputes it and compares in constant time; any
// mismatch, like any parse failure, surfaces as ErrCorrupted. A corrupted
// descriptor is never repaired automatically.
//
// # Durability
//
// Save writes through a temporary file and renames it into place, so a
// failed write leaves the previous descriptor as the last durable state.
//
// # Usage
//
//	pack := index.Create("My Pack", "my_pack_by_bot", index.TypeRegular, "12345")
//	err := index.Save(path, pack)
//	pack, err = index.Load(path)
package index
