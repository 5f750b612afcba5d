package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/reznik99/cloud-storage-client/internal/adapter"
	"github.com/reznik99/cloud-storage-client/internal/app"
	"github.com/reznik99/cloud-storage-client/internal/crypto"
	"github.com/reznik99/cloud-storage-client/internal/mock"
	"github.com/reznik99/cloud-storage-client/internal/store"
	"github.com/reznik99/cloud-storage-client/models"
)

func newTestAuthSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientAuthService,
	*mock.MockServerAdapter,
	*mock.MockKeyVaultService,
	*crypto.CredentialSession,
) {
	t.Helper()
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	mockVault := mock.NewMockKeyVaultService(ctrl)
	session := crypto.NewCredentialSession()

	storages := &store.ClientStorages{}

	svc := NewClientAuthService(storages, mockAdapter, mockVault, session).(*clientAuthService)
	return svc, mockAdapter, mockVault, session
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestClientAuthService_Signup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockVault, session := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	crv := []byte("crv-12-bytes")
	salt := []byte("derived-salt-32-bytes-xxxxxxxxxx")
	keys := crypto.DerivedKeys{
		MasterEncKey: []byte("master-enc-key-32-bytes-xxxxxxxx"),
		AuthKey:      []byte("auth-key-32-bytes-xxxxxxxxxxxxxx"),
	}
	accountKey := []byte("account-key-32-bytes-xxxxxxxxxxx")
	wrapped := []byte("wrapped-account-key-40-bytes-xxxxxxxxxxx")

	gomock.InOrder(
		mockVault.EXPECT().GenerateClientRandomValue().Return(crv, nil),
		mockVault.EXPECT().DeriveSalt(crv).Return(salt),
		mockVault.EXPECT().DeriveKeys(ctx, "super-secret", salt).Return(keys, nil),
		mockVault.EXPECT().GenerateKey().Return(accountKey, nil),
		mockVault.EXPECT().WrapKey(accountKey, keys.MasterEncKey).Return(wrapped, nil),
		// The adapter must see base64 values and no password anywhere.
		mockAdapter.EXPECT().Register(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.Token, error) {
				assert.Equal(t, "alice@example.com", u.Email)
				assert.Equal(t, base64.StdEncoding.EncodeToString(keys.AuthKey), u.AuthKey)
				assert.Equal(t, base64.StdEncoding.EncodeToString(crv), u.ClientRandomValue)
				assert.Equal(t, base64.StdEncoding.EncodeToString(wrapped), u.WrappedAccountKey)
				return models.Token{SignedString: "jwt", UserID: 1}, nil
			},
		),
	)

	err := svc.Signup(ctx, "alice@example.com", "super-secret")
	require.NoError(t, err)

	userID, err := svc.CurrentUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(1), userID)

	snap, err := session.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, keys.MasterEncKey, snap.MasterEncKey)
	assert.Equal(t, wrapped, snap.WrappedAccountKey)
}

func TestClientAuthService_Signup_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockVault, session := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockVault.EXPECT().GenerateClientRandomValue().Return([]byte("crv-12-bytes"), nil)
	mockVault.EXPECT().DeriveSalt(gomock.Any()).Return([]byte("salt"))
	mockVault.EXPECT().DeriveKeys(ctx, gomock.Any(), gomock.Any()).Return(crypto.DerivedKeys{
		MasterEncKey: []byte("mk"), AuthKey: []byte("ak"),
	}, nil)
	mockVault.EXPECT().GenerateKey().Return([]byte("account-key"), nil)
	mockVault.EXPECT().WrapKey(gomock.Any(), gomock.Any()).Return([]byte("wrapped"), nil)
	mockAdapter.EXPECT().Register(ctx, gomock.Any()).
		Return(models.Token{}, fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgEmailAlreadyExists))

	err := svc.Signup(ctx, "alice@example.com", "pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRegisterOnServer)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	assert.False(t, session.Unlocked())
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestClientAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockVault, session := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	crv := []byte("crv-12-bytes")
	salt := []byte("derived-salt-32-bytes-xxxxxxxxxx")
	keys := crypto.DerivedKeys{
		MasterEncKey: []byte("master-enc-key-32-bytes-xxxxxxxx"),
		AuthKey:      []byte("auth-key-32-bytes-xxxxxxxxxxxxxx"),
	}
	wrapped := []byte("wrapped-account-key-40-bytes-xxxxxxxxxxx")

	gomock.InOrder(
		mockAdapter.EXPECT().GetClientRandomValue(ctx, "alice@example.com").Return(models.User{
			Email:             "alice@example.com",
			ClientRandomValue: base64.StdEncoding.EncodeToString(crv),
		}, nil),
		mockVault.EXPECT().DeriveSalt(crv).Return(salt),
		mockVault.EXPECT().DeriveKeys(ctx, "super-secret", salt).Return(keys, nil),
		mockAdapter.EXPECT().Login(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, models.Token, error) {
				assert.Equal(t, base64.StdEncoding.EncodeToString(keys.AuthKey), u.AuthKey)
				serverUser := models.User{
					UserID:            7,
					Email:             u.Email,
					WrappedAccountKey: base64.StdEncoding.EncodeToString(wrapped),
				}
				return serverUser, models.Token{SignedString: "jwt", UserID: 7}, nil
			},
		),
	)

	err := svc.Login(ctx, "alice@example.com", "super-secret")
	require.NoError(t, err)

	userID, err := svc.CurrentUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)

	snap, err := session.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, wrapped, snap.WrappedAccountKey)
	assert.Equal(t, crv, snap.CRV)
}

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockVault, session := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	crv := []byte("crv-12-bytes")

	mockAdapter.EXPECT().GetClientRandomValue(ctx, gomock.Any()).Return(models.User{
		ClientRandomValue: base64.StdEncoding.EncodeToString(crv),
	}, nil)
	mockVault.EXPECT().DeriveSalt(crv).Return([]byte("salt"))
	mockVault.EXPECT().DeriveKeys(ctx, gomock.Any(), gomock.Any()).Return(crypto.DerivedKeys{
		MasterEncKey: []byte("mk"), AuthKey: []byte("ak"),
	}, nil)
	mockAdapter.EXPECT().Login(ctx, gomock.Any()).
		Return(models.User{}, models.Token{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidCredentials))

	err := svc.Login(ctx, "alice@example.com", "wrong-password")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.False(t, session.Unlocked())
}

func TestClientAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetClientRandomValue(ctx, gomock.Any()).
		Return(models.User{}, fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgAccountNotFound))

	err := svc.Login(ctx, "nobody@example.com", "pw")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginOnServer)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

// ── Logout / Reauthenticate ──────────────────────────────────────────────────

func loginTestUser(t *testing.T, ctx context.Context, svc *clientAuthService, mockAdapter *mock.MockServerAdapter, mockVault *mock.MockKeyVaultService) {
	t.Helper()

	crv := []byte("crv-12-bytes")
	keys := crypto.DerivedKeys{MasterEncKey: []byte("mk"), AuthKey: []byte("ak")}

	mockAdapter.EXPECT().GetClientRandomValue(ctx, gomock.Any()).Return(models.User{
		ClientRandomValue: base64.StdEncoding.EncodeToString(crv),
	}, nil)
	mockVault.EXPECT().DeriveSalt(crv).Return([]byte("salt"))
	mockVault.EXPECT().DeriveKeys(ctx, gomock.Any(), gomock.Any()).Return(keys, nil)
	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.User{
		UserID:            7,
		WrappedAccountKey: base64.StdEncoding.EncodeToString([]byte("wrapped")),
	}, models.Token{UserID: 7}, nil)

	require.NoError(t, svc.Login(ctx, "alice@example.com", "super-secret"))
}

func TestClientAuthService_Logout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockVault, session := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	loginTestUser(t, ctx, svc, mockAdapter, mockVault)
	require.True(t, session.Unlocked())

	mockAdapter.EXPECT().SetToken("")

	require.NoError(t, svc.Logout(ctx))

	assert.False(t, session.Unlocked())
	_, err := svc.CurrentUserID()
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = session.Snapshot()
	assert.ErrorIs(t, err, crypto.ErrMissingCredentials)
}

func TestClientAuthService_Reauthenticate_UsesCachedCRV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockAdapter, mockVault, session := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	loginTestUser(t, ctx, svc, mockAdapter, mockVault)

	mockAdapter.EXPECT().SetToken("")
	require.NoError(t, svc.Logout(ctx))

	crv := []byte("crv-12-bytes")
	keys := crypto.DerivedKeys{MasterEncKey: []byte("mk2"), AuthKey: []byte("ak2")}

	// No GetClientRandomValue round trip: the cached CRV is reused.
	mockVault.EXPECT().DeriveSalt(crv).Return([]byte("salt"))
	mockVault.EXPECT().DeriveKeys(ctx, "super-secret", gomock.Any()).Return(keys, nil)
	mockAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.User{
		UserID:            7,
		WrappedAccountKey: base64.StdEncoding.EncodeToString([]byte("wrapped-2")),
	}, models.Token{UserID: 7}, nil)

	require.NoError(t, svc.Reauthenticate(ctx, "super-secret"))
	assert.True(t, session.Unlocked())

	userID, err := svc.CurrentUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)
}

func TestClientAuthService_Reauthenticate_NeverLoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _ := newTestAuthSvc(t, ctrl)

	err := svc.Reauthenticate(context.Background(), "pw")
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

// ── Error mapper ─────────────────────────────────────────────────────────────

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"wrong credentials", fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidCredentials), ErrWrongPassword},
		{"expired token", fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgTokenIsExpired), ErrTokenIsExpired},
		{"email conflict", fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgEmailAlreadyExists), ErrEmailAlreadyExists},
		{"file name conflict", fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgFileNameAlreadyExists), ErrFileNameTaken},
		{"account not found", fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgAccountNotFound), ErrAccountNotFound},
		{"file not found", fmt.Errorf("%w: %s", adapter.ErrNotFound, app.MsgFileNotFound), ErrFileNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestMapAdapterError_PassesThroughUnknown(t *testing.T) {
	unknown := errors.New("connection refused")
	assert.Equal(t, unknown, mapAdapterError(unknown))
}
