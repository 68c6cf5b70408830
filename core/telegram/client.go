package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sethvargo/go-retry"
)

// Client is the capability interface for remote sticker set operations.
type Client interface {
	// GetMe resolves the identity behind the configured token.
	GetMe(ctx context.Context) (*User, error)
	// GetStickerSet fetches the remote inventory of a set.
	// Returns ErrSetNotFound if the set does not exist yet.
	GetStickerSet(ctx context.Context, name string) (*StickerSet, error)
	// CreateStickerSet creates a new set with an initial sticker batch.
	CreateStickerSet(ctx context.Context, userID int64, name, title, stickerType string, stickers []InputSticker) error
	// AddSticker appends one sticker to an existing set.
	AddSticker(ctx context.Context, userID int64, name string, sticker InputSticker) error
	// DeleteSticker removes a sticker from its set by file id.
	DeleteSticker(ctx context.Context, fileID string) error
	// SetTitle renames a set.
	SetTitle(ctx context.Context, name, title string) error
	// GetFile resolves a file id into a download descriptor.
	GetFile(ctx context.Context, fileID string) (*File, error)
	// DownloadFile fetches the raw bytes behind a descriptor's FilePath.
	DownloadFile(ctx context.Context, filePath string) ([]byte, error)
}

// apiEnvelope is the uniform Bot API response wrapper.
type apiEnvelope struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result"`
	ErrorCode   int             `json:"error_code"`
	Description string          `json:"description"`
}

type botClient struct {
	http        *resty.Client
	token       string
	readRetries int
}

// NewClient creates a Bot API client for the given token.
func NewClient(cfg Config, token string) (Client, error) {
	if token == "" {
		return nil, fmt.Errorf("bot token is empty")
	}
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	base := cfg.APIBaseURL
	if base == "" {
		base = "https://api.telegram.org"
	}

	http := resty.New().
		SetBaseURL(base).
		SetTimeout(time.Duration(timeout) * time.Second)
	if cfg.Proxy != "" {
		http.SetProxy(cfg.Proxy)
	}

	return &botClient{http: http, token: token, readRetries: cfg.ReadRetries}, nil
}

// invoke posts a Bot API method and decodes the response envelope into out.
// out may be nil for methods whose result is just a success flag.
func (c *botClient) invoke(ctx context.Context, method string, build func(r *resty.Request), out any) error {
	req := c.http.R().SetContext(ctx)
	if build != nil {
		build(req)
	}
	resp, err := req.Post(fmt.Sprintf("/bot%s/%s", c.token, method))
	if err != nil {
		return fmt.Errorf("%s transport failed: %w", method, err)
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		return fmt.Errorf("%s returned unparsable response: %w", method, err)
	}
	if !envelope.OK {
		return mapAPIError(envelope.ErrorCode, envelope.Description)
	}
	if out != nil {
		if err := json.Unmarshal(envelope.Result, out); err != nil {
			return fmt.Errorf("%s returned unexpected result: %w", method, err)
		}
	}
	return nil
}

// readRetry wraps fn with bounded constant backoff. Only transport-level
// failures are retried; API-level errors pass through immediately.
func (c *botClient) readRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	if c.readRetries <= 0 {
		return fn(ctx)
	}
	backoff := retry.WithMaxRetries(uint64(c.readRetries), retry.NewConstant(500*time.Millisecond))
	return retry.Do(ctx, backoff, fn)
}

func (c *botClient) GetMe(ctx context.Context) (*User, error) {
	var user User
	err := c.readRetry(ctx, func(ctx context.Context) error {
		err := c.invoke(ctx, "getMe", nil, &user)
		return markTransportRetryable(err)
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *botClient) GetStickerSet(ctx context.Context, name string) (*StickerSet, error) {
	var set StickerSet
	err := c.readRetry(ctx, func(ctx context.Context) error {
		err := c.invoke(ctx, "getStickerSet", func(r *resty.Request) {
			r.SetFormData(map[string]string{"name": name})
		}, &set)
		return markTransportRetryable(err)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sticker set %s: %w", name, err)
	}
	return &set, nil
}

func (c *botClient) CreateStickerSet(ctx context.Context, userID int64, name, title, stickerType string, stickers []InputSticker) error {
	wire := make([]map[string]any, 0, len(stickers))
	for i, sticker := range stickers {
		wire = append(wire, map[string]any{
			"sticker":    fmt.Sprintf("attach://sticker%d", i),
			"format":     sticker.Format,
			"emoji_list": sticker.EmojiList,
		})
	}
	payload, err := json.Marshal(wire)
	if err != nil {
		return fmt.Errorf("failed to encode sticker batch: %w", err)
	}
	build := func(r *resty.Request) {
		r.SetFormData(map[string]string{
			"user_id":      strconv.FormatInt(userID, 10),
			"name":         name,
			"title":        title,
			"sticker_type": stickerType,
			"stickers":     string(payload),
		})
		for i, sticker := range stickers {
			r.SetFileReader(fmt.Sprintf("sticker%d", i), fmt.Sprintf("sticker%d.%s", i, formatExtension(sticker.Format)), bytes.NewReader(sticker.Data))
		}
	}
	if err := c.invoke(ctx, "createNewStickerSet", build, nil); err != nil {
		return fmt.Errorf("failed to create sticker set %s: %w", name, err)
	}
	return nil
}

func (c *botClient) AddSticker(ctx context.Context, userID int64, name string, sticker InputSticker) error {
	wire, err := json.Marshal(map[string]any{
		"sticker":    "attach://sticker",
		"format":     sticker.Format,
		"emoji_list": sticker.EmojiList,
	})
	if err != nil {
		return fmt.Errorf("failed to encode sticker: %w", err)
	}
	err = c.invoke(ctx, "addStickerToSet", func(r *resty.Request) {
		r.SetFormData(map[string]string{
			"user_id": strconv.FormatInt(userID, 10),
			"name":    name,
			"sticker": string(wire),
		})
		r.SetFileReader("sticker", "sticker."+formatExtension(sticker.Format), bytes.NewReader(sticker.Data))
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to add sticker to %s: %w", name, err)
	}
	return nil
}

func (c *botClient) DeleteSticker(ctx context.Context, fileID string) error {
	err := c.invoke(ctx, "deleteStickerFromSet", func(r *resty.Request) {
		r.SetFormData(map[string]string{"sticker": fileID})
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to delete sticker %s: %w", fileID, err)
	}
	return nil
}

func (c *botClient) SetTitle(ctx context.Context, name, title string) error {
	err := c.invoke(ctx, "setStickerSetTitle", func(r *resty.Request) {
		r.SetFormData(map[string]string{"name": name, "title": title})
	}, nil)
	if err != nil {
		return fmt.Errorf("failed to set title of %s: %w", name, err)
	}
	return nil
}

func (c *botClient) GetFile(ctx context.Context, fileID string) (*File, error) {
	var file File
	err := c.readRetry(ctx, func(ctx context.Context) error {
		err := c.invoke(ctx, "getFile", func(r *resty.Request) {
			r.SetFormData(map[string]string{"file_id": fileID})
		}, &file)
		return markTransportRetryable(err)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to resolve file %s: %w", fileID, err)
	}
	return &file, nil
}

func (c *botClient) DownloadFile(ctx context.Context, filePath string) ([]byte, error) {
	var body []byte
	err := c.readRetry(ctx, func(ctx context.Context) error {
		resp, err := c.http.R().SetContext(ctx).Get(fmt.Sprintf("/file/bot%s/%s", c.token, filePath))
		if err != nil {
			return retry.RetryableError(fmt.Errorf("file download transport failed: %w", err))
		}
		if resp.IsError() {
			return fmt.Errorf("file download failed: http %d", resp.StatusCode())
		}
		body = resp.Body()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to download %s: %w", filePath, err)
	}
	return body, nil
}

// markTransportRetryable tags transport failures for the retry wrapper.
// invoke wraps them with a "transport failed" message; API-level errors are
// returned as-is and must not be retried.
func markTransportRetryable(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) || errors.Is(err, ErrSetNotFound) || errors.Is(err, ErrUnauthorized) {
		return err
	}
	return retry.RetryableError(err)
}

func formatExtension(format string) string {
	switch format {
	case FormatVideo:
		return "webm"
	case FormatAnimated:
		return "tgs"
	default:
		return "webp"
	}
}
