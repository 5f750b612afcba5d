package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/reznik99/cloud-storage-client/internal/adapter"
	"github.com/reznik99/cloud-storage-client/internal/crypto"
	"github.com/reznik99/cloud-storage-client/internal/store"
	"github.com/reznik99/cloud-storage-client/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	keyVault   crypto.KeyVaultService
	session    *crypto.CredentialSession

	mu        sync.Mutex
	userID    int64
	lastEmail string
	lastCRV   []byte
}

// NewClientAuthService wires the account lifecycle service. The credential
// session is shared with the file service so both see the same generation.
func NewClientAuthService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, keyVault crypto.KeyVaultService, session *crypto.CredentialSession) ClientAuthService {
	return &clientAuthService{
		localStore: localStore,
		adapter:    serverAdapter,
		keyVault:   keyVault,
		session:    session,
	}
}

func (a *clientAuthService) Signup(ctx context.Context, email, password string) error {
	crv, err := a.keyVault.GenerateClientRandomValue()
	if err != nil {
		return fmt.Errorf("generate client random value: %w", err)
	}

	salt := a.keyVault.DeriveSalt(crv)
	keys, err := a.keyVault.DeriveKeys(ctx, password, salt)
	if err != nil {
		return fmt.Errorf("derive keys: %w", err)
	}

	accountKey, err := a.keyVault.GenerateKey()
	if err != nil {
		return fmt.Errorf("generate account key: %w", err)
	}

	wrappedAccountKey, err := a.keyVault.WrapKey(accountKey, keys.MasterEncKey)
	crypto.Zero(accountKey)
	if err != nil {
		return fmt.Errorf("wrap account key: %w", err)
	}

	// All byte slices are base64-encoded for safe transport and storage.
	user := models.User{
		Email:             email,
		AuthKey:           base64.StdEncoding.EncodeToString(keys.AuthKey),
		ClientRandomValue: base64.StdEncoding.EncodeToString(crv),
		WrappedAccountKey: base64.StdEncoding.EncodeToString(wrappedAccountKey),
	}

	token, err := a.adapter.Register(ctx, user)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	a.session.Unlock(crypto.UnlockMaterial{
		CRV:               crv,
		MasterEncKey:      keys.MasterEncKey,
		WrappedAccountKey: wrappedAccountKey,
		AuthKey:           keys.AuthKey,
	})
	a.rememberLogin(token.UserID, email, crv)

	return nil
}

func (a *clientAuthService) Login(ctx context.Context, email, password string) error {
	userWithCRV, err := a.adapter.GetClientRandomValue(ctx, email)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	crv, err := base64.StdEncoding.DecodeString(userWithCRV.ClientRandomValue)
	if err != nil {
		return fmt.Errorf("decode client random value: %w", err)
	}

	return a.authenticate(ctx, email, password, crv)
}

func (a *clientAuthService) Reauthenticate(ctx context.Context, password string) error {
	a.mu.Lock()
	email := a.lastEmail
	crv := make([]byte, len(a.lastCRV))
	copy(crv, a.lastCRV)
	a.mu.Unlock()

	if email == "" || len(crv) == 0 {
		return ErrNotLoggedIn
	}

	return a.authenticate(ctx, email, password, crv)
}

// authenticate runs the shared tail of Login and Reauthenticate: derive the
// key pair from password and the account's CRV, prove possession of the auth
// key to the server, and unlock the session with the returned material.
func (a *clientAuthService) authenticate(ctx context.Context, email, password string, crv []byte) error {
	salt := a.keyVault.DeriveSalt(crv)
	keys, err := a.keyVault.DeriveKeys(ctx, password, salt)
	if err != nil {
		return fmt.Errorf("derive keys: %w", err)
	}

	user := models.User{
		Email:   email,
		AuthKey: base64.StdEncoding.EncodeToString(keys.AuthKey),
	}

	serverUser, token, err := a.adapter.Login(ctx, user)
	if err != nil {
		mapped := mapAdapterError(err)
		if errors.Is(mapped, ErrWrongPassword) {
			return ErrWrongPassword
		}
		return fmt.Errorf("%w: %w", ErrLoginOnServer, mapped)
	}

	wrappedAccountKey, err := base64.StdEncoding.DecodeString(serverUser.WrappedAccountKey)
	if err != nil {
		return fmt.Errorf("decode wrapped account key: %w", err)
	}

	a.session.Unlock(crypto.UnlockMaterial{
		CRV:               crv,
		MasterEncKey:      keys.MasterEncKey,
		WrappedAccountKey: wrappedAccountKey,
		AuthKey:           keys.AuthKey,
	})
	a.rememberLogin(token.UserID, email, crv)

	return nil
}

func (a *clientAuthService) Logout(_ context.Context) error {
	a.session.Clear()
	a.adapter.SetToken("")

	a.mu.Lock()
	a.userID = 0
	a.mu.Unlock()

	return nil
}

func (a *clientAuthService) CurrentUserID() (int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.userID == 0 || !a.session.Unlocked() {
		return 0, ErrNotLoggedIn
	}
	return a.userID, nil
}

// rememberLogin caches the account identity needed for Reauthenticate. The
// email and CRV survive Logout on purpose: re-deriving from the cached CRV
// saves the extra round trip, and neither value is secret.
func (a *clientAuthService) rememberLogin(userID int64, email string, crv []byte) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.userID = userID
	a.lastEmail = email
	a.lastCRV = make([]byte, len(crv))
	copy(a.lastCRV, crv)
}
