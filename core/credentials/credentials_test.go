package credentials

import (
	"context"
	"errors"
	"testing"

	"sticker-manager/core/telegram"
	"sticker-manager/core/telegram/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		ownerID string
		wantErr bool
	}{
		{name: "valid", token: "123456:ABC-DEF", ownerID: "987654", wantErr: false},
		{name: "empty token", token: "", ownerID: "987654", wantErr: true},
		{name: "non-numeric owner", token: "123456:ABC-DEF", ownerID: "alice", wantErr: true},
		{name: "empty owner", token: "123456:ABC-DEF", ownerID: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate, err := Parse(tt.token, tt.ownerID, "")
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.token, candidate.Token)

			id, err := candidate.OwnerNumericID()
			require.NoError(t, err)
			assert.Equal(t, int64(987654), id)
		})
	}
}

func TestAuthenticate(t *testing.T) {
	candidate, err := Parse("123456:ABC-DEF", "987654", "")
	require.NoError(t, err)

	client := new(mocks.Client)
	client.On("GetMe", mock.Anything).Return(&telegram.User{
		ID:       111,
		IsBot:    true,
		Username: "testbot",
	}, nil)

	credential, err := Authenticate(context.Background(), candidate, client)
	require.NoError(t, err)
	assert.Equal(t, "testbot", credential.BotUser.Username)
	assert.Equal(t, int64(111), credential.BotUser.ID)
	client.AssertExpectations(t)
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	candidate, err := Parse("123456:ABC-DEF", "987654", "")
	require.NoError(t, err)

	client := new(mocks.Client)
	client.On("GetMe", mock.Anything).Return(nil, telegram.ErrUnauthorized)

	_, err = Authenticate(context.Background(), candidate, client)
	assert.ErrorIs(t, err, telegram.ErrUnauthorized)
}

func TestAuthenticateRejectsMissingUsername(t *testing.T) {
	candidate, err := Parse("123456:ABC-DEF", "987654", "")
	require.NoError(t, err)

	client := new(mocks.Client)
	client.On("GetMe", mock.Anything).Return(&telegram.User{ID: 111, IsBot: true}, nil)

	_, err = Authenticate(context.Background(), candidate, client)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestAuthenticateSurfacesTransportError(t *testing.T) {
	candidate, err := Parse("123456:ABC-DEF", "987654", "")
	require.NoError(t, err)

	wantErr := errors.New("connection refused")
	client := new(mocks.Client)
	client.On("GetMe", mock.Anything).Return(nil, wantErr)

	_, err = Authenticate(context.Background(), candidate, client)
	assert.ErrorIs(t, err, wantErr)
}
