package index

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Sticker types accepted by the remote service.
const (
	TypeMask        = "mask"
	TypeRegular     = "regular"
	TypeCustomEmoji = "custom_emoji"
)

// ErrCorrupted is returned by Load when the descriptor cannot be parsed or
// fails the integrity check. Callers must treat both cases identically and
// abort; the descriptor is never rewritten to "fix" it.
var ErrCorrupted = errors.New("index corrupted")

// Emote associates an emoji with the remote unique file id of one sticker.
type Emote struct {
	// Emoji is the emoji string shown for this sticker.
	Emoji string `json:"emoji"`
	// FileID is the remote unique-content id of the sticker file.
	FileID string `json:"file_id"`
}

// Pack is the persisted descriptor of one sticker collection.
type Pack struct {
	// Title is the human-readable pack title.
	Title string `json:"title"`
	// Name is the globally unique collection identifier.
	Name string `json:"name"`
	// StickerType is one of mask, regular, custom_emoji.
	StickerType string `json:"sticker_type"`
	// OperatorID is the remote identity authorized to mutate the collection.
	OperatorID string `json:"operator_id"`
	// LockNS is the integrity tag binding Name and StickerType to OperatorID.
	LockNS string `json:"lock_ns"`
	// Emotes mirrors the remote inventory in provisioning order.
	Emotes []Emote `json:"emotes"`
}

// IsValidStickerType reports whether t is an accepted sticker type.
func IsValidStickerType(t string) bool {
	switch t {
	case TypeMask, TypeRegular, TypeCustomEmoji:
		return true
	default:
		return false
	}
}

// LockTag computes the integrity tag for the given identity fields.
func LockTag(operatorID, name, stickerType string) string {
	mac := hmac.New(sha256.New, []byte(operatorID))
	mac.Write([]byte(name + ":" + stickerType))
	return hex.EncodeToString(mac.Sum(nil))
}

// Create builds a new Pack with its integrity tag embedded.
func Create(title, name, stickerType, operatorID string) *Pack {
	return &Pack{
		Title:       title,
		Name:        name,
		StickerType: stickerType,
		OperatorID:  operatorID,
		LockNS:      LockTag(operatorID, name, stickerType),
		Emotes:      []Emote{},
	}
}

// Verify recomputes the integrity tag and compares it in constant time.
func (p *Pack) Verify() error {
	expected := LockTag(p.OperatorID, p.Name, p.StickerType)
	if !hmac.Equal([]byte(p.LockNS), []byte(expected)) {
		return fmt.Errorf("%w: metadata has been tampered", ErrCorrupted)
	}
	return nil
}

// Load reads and validates the descriptor at path.
// Parse failures and integrity failures both surface as ErrCorrupted.
func Load(path string) (*Pack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read index %s: %w", path, err)
	}
	var pack Pack
	if err := json.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupted, err)
	}
	if !IsValidStickerType(pack.StickerType) {
		return nil, fmt.Errorf("%w: unknown sticker type %q", ErrCorrupted, pack.StickerType)
	}
	if err := pack.Verify(); err != nil {
		return nil, err
	}
	return &pack, nil
}

// Save persists the descriptor atomically (temp file + rename), so a write
// failure leaves the previous on-disk descriptor intact.
func Save(path string, pack *Pack) error {
	data, err := json.MarshalIndent(pack, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode index: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".index-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp index: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write index: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write index: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace index %s: %w", path, err)
	}
	return nil
}
