package mocks

import (
	"context"

	"sticker-manager/core/telegram"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of telegram.Client
type Client struct {
	mock.Mock
}

func (m *Client) GetMe(ctx context.Context) (*telegram.User, error) {
	args := m.Called(ctx)
	if user, ok := args.Get(0).(*telegram.User); ok {
		return user, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) GetStickerSet(ctx context.Context, name string) (*telegram.StickerSet, error) {
	args := m.Called(ctx, name)
	if set, ok := args.Get(0).(*telegram.StickerSet); ok {
		return set, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) CreateStickerSet(ctx context.Context, userID int64, name, title, stickerType string, stickers []telegram.InputSticker) error {
	args := m.Called(ctx, userID, name, title, stickerType, stickers)
	return args.Error(0)
}

func (m *Client) AddSticker(ctx context.Context, userID int64, name string, sticker telegram.InputSticker) error {
	args := m.Called(ctx, userID, name, sticker)
	return args.Error(0)
}

func (m *Client) DeleteSticker(ctx context.Context, fileID string) error {
	args := m.Called(ctx, fileID)
	return args.Error(0)
}

func (m *Client) SetTitle(ctx context.Context, name, title string) error {
	args := m.Called(ctx, name, title)
	return args.Error(0)
}

func (m *Client) GetFile(ctx context.Context, fileID string) (*telegram.File, error) {
	args := m.Called(ctx, fileID)
	if file, ok := args.Get(0).(*telegram.File); ok {
		return file, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) DownloadFile(ctx context.Context, filePath string) ([]byte, error) {
	args := m.Called(ctx, filePath)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}
