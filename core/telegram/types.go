package telegram

// User is the identity behind a bot token.
type User struct {
	// ID is the numeric account id.
	ID int64 `json:"id"`
	// IsBot distinguishes bot accounts from user accounts.
	IsBot bool `json:"is_bot"`
	// Username is the account's @username, without the @.
	Username string `json:"username"`
	// FirstName is the display name.
	FirstName string `json:"first_name"`
}

// Sticker is one item of a remote sticker set.
type Sticker struct {
	// FileID is the handle used for delete and download operations.
	FileID string `json:"file_id"`
	// FileUniqueID is the content-addressed id stable across re-fetches.
	FileUniqueID string `json:"file_unique_id"`
	// FileSize is the sticker file size in bytes.
	FileSize int64 `json:"file_size"`
	// Emoji is the emoji associated with the sticker.
	Emoji string `json:"emoji"`
}

// StickerSet is the remote-side collection.
type StickerSet struct {
	// Name is the globally unique set identifier.
	Name string `json:"name"`
	// Title is the human-readable set title.
	Title string `json:"title"`
	// StickerType is one of mask, regular, custom_emoji.
	StickerType string `json:"sticker_type"`
	// Stickers lists the set's items in provisioning order.
	Stickers []Sticker `json:"stickers"`
}

// File is the download descriptor returned by getFile.
type File struct {
	FileID       string `json:"file_id"`
	FileUniqueID string `json:"file_unique_id"`
	FileSize     int64  `json:"file_size"`
	// FilePath is the server-relative path passed to DownloadFile.
	FilePath string `json:"file_path"`
}

// Sticker wire formats accepted by upload calls.
const (
	FormatStatic   = "static"
	FormatAnimated = "animated"
	FormatVideo    = "video"
)

// InputSticker is an upload payload produced by the encoder.
type InputSticker struct {
	// Data is the encoded sticker file content.
	Data []byte
	// Format is one of FormatStatic, FormatAnimated, FormatVideo.
	Format string
	// EmojiList is the 1-20 emoji associated with the sticker.
	EmojiList []string
}
