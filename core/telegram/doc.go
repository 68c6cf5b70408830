// Package telegram provides the remote transport for sticker set operations.
//
// It wraps the Telegram Bot API behind the Client interface so the sync
// logic never touches HTTP details and tests can substitute the mock in
// core/telegram/mocks.
//
// # Not-found is a state, not an error
//
// A sticker set that does not exist yet is a valid state (the first push
// creates it). The Bot API only signals this through the STICKERSET_INVALID
// description, so the client maps that response to the typed ErrSetNotFound
// sentinel in exactly one place. Callers match with errors.Is and never
// inspect error text.
//
// # Retries
//
// Idempotent reads (getMe, getStickerSet, getFile, file downloads) retry a
// bounded number of times on transport failures. Mutating calls are never
// retried; a duplicated creation or deletion is worse than a surfaced error.
package telegram
