// Package encoder turns local media files into sticker upload payloads.
//
// Encode is an opaque boundary: callers hand it a file path and a target
// scale and get back bytes, a wire format, and emoji hints. Actual image and
// video transcoding is out of scope for this tool; the shipped encoder
// passes file bytes through unchanged, detects the wire format from content
// magic, and derives emoji hints from emoji characters in the file name
// (falling back to ❤️).
//
// The same content sniffing names downloaded files: a fetched sticker is
// stored as <file_unique_id>.<ext> with the extension inferred from its
// bytes, since the remote does not report one.
package encoder
