package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"sticker-manager/core/telegram"

	"github.com/zalando/go-keyring"
)

// Keyring coordinates for the stored credential.
const (
	ServiceName = "TStickerService"
	AccountName = "telegram"
)

var (
	// ErrNotLoggedIn means no credential is stored in the keyring.
	ErrNotLoggedIn = errors.New("not logged in")
	// ErrInvalid means the raw credential triple failed structural checks.
	ErrInvalid = errors.New("invalid credentials")
)

// Candidate is a structurally valid but unauthenticated credential triple.
type Candidate struct {
	// Token is the bot token issued by BotFather.
	Token string `json:"token"`
	// OwnerID is the numeric id of the sticker pack owner.
	OwnerID string `json:"owner_id"`
	// Proxy is an optional proxy URL for bot traffic.
	Proxy string `json:"bot_proxy,omitempty"`
}

// Credential is an authenticated credential carrying the bot identity.
type Credential struct {
	Candidate
	// BotUser is the identity resolved from the token.
	BotUser telegram.User
}

// Parse validates the triple structurally. It performs no I/O.
func Parse(token, ownerID, proxy string) (Candidate, error) {
	if token == "" {
		return Candidate{}, fmt.Errorf("%w: empty token", ErrInvalid)
	}
	if _, err := strconv.ParseInt(ownerID, 10, 64); err != nil {
		return Candidate{}, fmt.Errorf("%w: owner id must be numeric, got %q", ErrInvalid, ownerID)
	}
	return Candidate{Token: token, OwnerID: ownerID, Proxy: proxy}, nil
}

// Authenticate resolves the candidate against the live API and returns the
// credential with the bot identity attached.
func Authenticate(ctx context.Context, candidate Candidate, client telegram.Client) (*Credential, error) {
	user, err := client.GetMe(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to validate token: %w", err)
	}
	if user.Username == "" {
		return nil, fmt.Errorf("%w: bot has no username", ErrInvalid)
	}
	return &Credential{Candidate: candidate, BotUser: *user}, nil
}

// OwnerNumericID returns the owner id as int64. Parse guarantees it is
// numeric, so failures here only happen on hand-crafted values.
func (c Candidate) OwnerNumericID() (int64, error) {
	id, err := strconv.ParseInt(c.OwnerID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: owner id %q", ErrInvalid, c.OwnerID)
	}
	return id, nil
}

// Store persists the candidate in the OS keyring.
func Store(candidate Candidate) error {
	data, err := json.Marshal(candidate)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}
	if err := keyring.Set(ServiceName, AccountName, string(data)); err != nil {
		return fmt.Errorf("failed to store credentials: %w", err)
	}
	return nil
}

// Lookup loads the stored candidate from the OS keyring.
func Lookup() (Candidate, error) {
	raw, err := keyring.Get(ServiceName, AccountName)
	if err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return Candidate{}, ErrNotLoggedIn
		}
		return Candidate{}, fmt.Errorf("failed to read credentials: %w", err)
	}
	var candidate Candidate
	if err := json.Unmarshal([]byte(raw), &candidate); err != nil {
		return Candidate{}, fmt.Errorf("%w: stored credentials unreadable", ErrInvalid)
	}
	return candidate, nil
}

// Delete removes the stored credential.
func Delete() error {
	if err := keyring.Delete(ServiceName, AccountName); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return ErrNotLoggedIn
		}
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	return nil
}
