package encoder

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sticker-manager/core/telegram"
)

// Target scales for the two sticker families.
const (
	// ScaleSticker is the canvas edge for regular and mask stickers.
	ScaleSticker = 512
	// ScaleEmoji is the canvas edge for custom emoji.
	ScaleEmoji = 100
)

// DefaultEmoji is used when no emoji hint can be derived from a file name.
const DefaultEmoji = "❤️"

// Encoder converts one local file into an upload payload.
type Encoder interface {
	// Encode reads the file at path and produces a payload scaled to the
	// given canvas edge.
	Encode(ctx context.Context, path string, scale int) (*telegram.InputSticker, error)
}

// ScaleFor returns the canvas edge for a sticker type.
func ScaleFor(stickerType string) int {
	if stickerType == "custom_emoji" {
		return ScaleEmoji
	}
	return ScaleSticker
}

// Passthrough is an Encoder that ships file bytes unchanged. Files must
// already satisfy the remote's format requirements; only format detection
// and emoji hinting happen here.
type Passthrough struct{}

// NewPassthrough creates the default encoder.
func NewPassthrough() *Passthrough {
	return &Passthrough{}
}

// Encode implements Encoder.
func (e *Passthrough) Encode(ctx context.Context, path string, scale int) (*telegram.InputSticker, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("refusing to encode empty file %s", path)
	}

	format := DetectFormat(data)
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	emojis := EmojiHints(stem)

	return &telegram.InputSticker{
		Data:      data,
		Format:    format,
		EmojiList: emojis,
	}, nil
}

// DetectFormat maps content magic to the remote wire format.
func DetectFormat(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte{0x1f, 0x8b}):
		// gzip container: .tgs animation
		return telegram.FormatAnimated
	case bytes.HasPrefix(data, []byte{0x1a, 0x45, 0xdf, 0xa3}):
		// EBML container: .webm video
		return telegram.FormatVideo
	default:
		return telegram.FormatStatic
	}
}

// SniffExtension infers a file extension from content magic, for naming
// downloaded stickers.
func SniffExtension(data []byte) string {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return "png"
	case len(data) >= 12 && bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return "webp"
	case bytes.HasPrefix(data, []byte{0x1a, 0x45, 0xdf, 0xa3}):
		return "webm"
	case bytes.HasPrefix(data, []byte{0x1f, 0x8b}):
		return "tgs"
	case bytes.HasPrefix(data, []byte{0xff, 0xd8, 0xff}):
		return "jpeg"
	default:
		return "bin"
	}
}

// EmojiHints extracts emoji characters from a file name stem. A stem like
// "😀😁" yields both; a plain name yields the default emoji.
func EmojiHints(stem string) []string {
	var hints []string
	for _, r := range stem {
		if isEmojiRune(r) {
			hints = append(hints, string(r))
		}
	}
	if len(hints) == 0 {
		return []string{DefaultEmoji}
	}
	return hints
}

// isEmojiRune covers the unicode blocks stickers realistically use.
func isEmojiRune(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // pictographs, transport, supplemental
		return true
	case r >= 0x2600 && r <= 0x27BF: // misc symbols, dingbats
		return true
	case r == 0x2764: // heavy black heart
		return true
	default:
		return false
	}
}
