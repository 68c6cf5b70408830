package encoder

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"sticker-manager/core/telegram"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pngMagic  = []byte("\x89PNG\r\n\x1a\nrest")
	webpMagic = []byte("RIFF\x00\x00\x00\x00WEBPrest")
	webmMagic = []byte{0x1a, 0x45, 0xdf, 0xa3, 0x00}
	tgsMagic  = []byte{0x1f, 0x8b, 0x08, 0x00}
)

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, telegram.FormatStatic, DetectFormat(pngMagic))
	assert.Equal(t, telegram.FormatStatic, DetectFormat(webpMagic))
	assert.Equal(t, telegram.FormatVideo, DetectFormat(webmMagic))
	assert.Equal(t, telegram.FormatAnimated, DetectFormat(tgsMagic))
}

func TestSniffExtension(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{name: "png", data: pngMagic, want: "png"},
		{name: "webp", data: webpMagic, want: "webp"},
		{name: "webm", data: webmMagic, want: "webm"},
		{name: "tgs", data: tgsMagic, want: "tgs"},
		{name: "jpeg", data: []byte{0xff, 0xd8, 0xff, 0xe0}, want: "jpeg"},
		{name: "unknown", data: []byte("plain text"), want: "bin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SniffExtension(tt.data))
		})
	}
}

func TestEmojiHints(t *testing.T) {
	assert.Equal(t, []string{"😀"}, EmojiHints("😀"))
	assert.Equal(t, []string{"😀", "🎉"}, EmojiHints("😀🎉"))
	assert.Equal(t, []string{DefaultEmoji}, EmojiHints("my_sticker"))
	assert.Equal(t, []string{"☀"}, EmojiHints("sunny☀day"))
}

func TestPassthroughEncode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "😀.png")
	require.NoError(t, os.WriteFile(path, pngMagic, 0o644))

	payload, err := NewPassthrough().Encode(context.Background(), path, ScaleSticker)
	require.NoError(t, err)
	assert.Equal(t, pngMagic, payload.Data)
	assert.Equal(t, telegram.FormatStatic, payload.Format)
	assert.Equal(t, []string{"😀"}, payload.EmojiList)
}

func TestPassthroughEncodeRejectsEmptyFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.png")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	_, err := NewPassthrough().Encode(context.Background(), path, ScaleSticker)
	assert.Error(t, err)
}

func TestPassthroughEncodeMissingFile(t *testing.T) {
	_, err := NewPassthrough().Encode(context.Background(), filepath.Join(t.TempDir(), "nope.png"), ScaleSticker)
	assert.Error(t, err)
}

func TestScaleFor(t *testing.T) {
	assert.Equal(t, ScaleEmoji, ScaleFor("custom_emoji"))
	assert.Equal(t, ScaleSticker, ScaleFor("regular"))
	assert.Equal(t, ScaleSticker, ScaleFor("mask"))
}
