package service

import (
	"github.com/reznik99/cloud-storage-client/internal/adapter"
	"github.com/reznik99/cloud-storage-client/internal/crypto"
	"github.com/reznik99/cloud-storage-client/internal/store"
)

// ClientServices bundles all client-side services behind one value.
type ClientServices struct {
	AuthService ClientAuthService
	FileService ClientFileService
	IndexJob    IndexRefreshJob

	// Session is exposed so the UI layer can tell a locked client apart
	// from an unauthenticated one without poking the services.
	Session *crypto.CredentialSession
}

// NewClientServices wires the full client service graph. The credential
// session is created here and shared between the auth and file services so
// generation checks see the same counter. shareBase is the server base URL
// embedded in share links.
func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, keyVault crypto.KeyVaultService, shareBase string) *ClientServices {
	session := crypto.NewCredentialSession()

	authSvc := NewClientAuthService(localStore, serverAdapter, keyVault, session)
	fileSvc := NewClientFileService(localStore, serverAdapter, keyVault, session, authSvc, shareBase)

	return &ClientServices{
		AuthService: authSvc,
		FileService: fileSvc,
		IndexJob:    NewIndexRefreshJob(fileSvc),
		Session:     session,
	}
}
