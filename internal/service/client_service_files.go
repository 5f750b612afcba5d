package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/reznik99/cloud-storage-client/internal/adapter"
	"github.com/reznik99/cloud-storage-client/internal/crypto"
	"github.com/reznik99/cloud-storage-client/internal/logger"
	"github.com/reznik99/cloud-storage-client/internal/store"
	"github.com/reznik99/cloud-storage-client/internal/utils"
	"github.com/reznik99/cloud-storage-client/models"
)

type clientFileService struct {
	localStore *store.ClientStorages
	adapter    adapter.ServerAdapter
	keyVault   crypto.KeyVaultService
	session    *crypto.CredentialSession
	auth       ClientAuthService
	uuidGen    *utils.UUIDGenerator
	shareBase  string
}

// NewClientFileService wires the encrypted file service. shareBase is the
// server base URL used when building share links.
func NewClientFileService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, keyVault crypto.KeyVaultService, session *crypto.CredentialSession, auth ClientAuthService, shareBase string) ClientFileService {
	return &clientFileService{
		localStore: localStore,
		adapter:    serverAdapter,
		keyVault:   keyVault,
		session:    session,
		auth:       auth,
		uuidGen:    utils.NewUUIDGenerator(),
		shareBase:  strings.TrimRight(shareBase, "/"),
	}
}

func (f *clientFileService) Upload(ctx context.Context, name string, plaintext []byte) (models.FileObject, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(name) == "" {
		return models.FileObject{}, ErrEmptyFileName
	}

	userID, err := f.auth.CurrentUserID()
	if err != nil {
		return models.FileObject{}, err
	}

	snap, err := f.session.Snapshot()
	if err != nil {
		return models.FileObject{}, err
	}

	accountKey, err := f.keyVault.UnwrapKey(snap.WrappedAccountKey, snap.MasterEncKey)
	if err != nil {
		return models.FileObject{}, fmt.Errorf("unwrap account key: %w", err)
	}

	enc, err := f.keyVault.EncryptFile(ctx, plaintext, accountKey)
	crypto.Zero(accountKey)
	if err != nil {
		return models.FileObject{}, fmt.Errorf("encrypt file: %w", err)
	}

	req := models.UploadRequest{
		FileID:         f.uuidGen.Generate(),
		Name:           name,
		Size:           int64(len(plaintext)),
		WrappedFileKey: base64.StdEncoding.EncodeToString(enc.WrappedFileKey),
		Envelope:       base64.StdEncoding.EncodeToString(enc.Envelope),
	}

	file, err := f.adapter.UploadFile(ctx, req)
	if err != nil {
		return models.FileObject{}, mapAdapterError(err)
	}

	// The server accepted the upload; only the local cache write is left.
	// Skip it when the caller gave up or the session changed underneath us,
	// so a stale login never pollutes another account's cache.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return models.FileObject{}, ctxErr
	}
	if !f.session.StillValid(snap.Generation) {
		return models.FileObject{}, crypto.ErrMissingCredentials
	}

	if saveErr := f.localStore.FileRepository.SaveFile(ctx, userID, file); saveErr != nil {
		log.Warn().Err(saveErr).
			Str("func", "clientFileService.Upload").
			Str("name", name).
			Msg("uploaded but failed to cache file metadata")
	}

	return file, nil
}

func (f *clientFileService) Download(ctx context.Context, name string) ([]byte, error) {
	userID, err := f.auth.CurrentUserID()
	if err != nil {
		return nil, err
	}

	snap, err := f.session.Snapshot()
	if err != nil {
		return nil, err
	}

	file, err := f.lookupFile(ctx, userID, name)
	if err != nil {
		return nil, err
	}

	dr, err := f.adapter.DownloadFile(ctx, file.FileID)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	envelope, err := base64.StdEncoding.DecodeString(dr.Envelope)
	if err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	// The server copy of the wrapped key is authoritative; the cache may
	// lag behind a re-upload from another device.
	wrappedFileKey, err := base64.StdEncoding.DecodeString(dr.File.WrappedFileKey)
	if err != nil {
		return nil, fmt.Errorf("decode wrapped file key: %w", err)
	}

	accountKey, err := f.keyVault.UnwrapKey(snap.WrappedAccountKey, snap.MasterEncKey)
	if err != nil {
		return nil, fmt.Errorf("unwrap account key: %w", err)
	}
	defer crypto.Zero(accountKey)

	plaintext, err := f.keyVault.DecryptFile(ctx, wrappedFileKey, accountKey, envelope)
	if err != nil {
		return nil, fmt.Errorf("decrypt file: %w", err)
	}

	return plaintext, nil
}

func (f *clientFileService) Delete(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	userID, err := f.auth.CurrentUserID()
	if err != nil {
		return err
	}

	file, err := f.lookupFile(ctx, userID, name)
	if err != nil {
		return err
	}

	if err = f.adapter.DeleteFile(ctx, file.FileID); err != nil {
		return mapAdapterError(err)
	}

	if delErr := f.localStore.FileRepository.DeleteFile(ctx, userID, name); delErr != nil {
		log.Warn().Err(delErr).
			Str("func", "clientFileService.Delete").
			Str("name", name).
			Msg("deleted on server but failed to drop cached metadata")
	}

	return nil
}

func (f *clientFileService) List(ctx context.Context) ([]models.FileObject, error) {
	userID, err := f.auth.CurrentUserID()
	if err != nil {
		return nil, err
	}

	files, err := f.localStore.FileRepository.GetAllFiles(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(files) > 0 {
		return files, nil
	}

	if err = f.RefreshIndex(ctx); err != nil {
		return nil, err
	}

	return f.localStore.FileRepository.GetAllFiles(ctx, userID)
}

func (f *clientFileService) RefreshIndex(ctx context.Context) error {
	userID, err := f.auth.CurrentUserID()
	if err != nil {
		return err
	}

	files, err := f.adapter.ListFiles(ctx)
	if err != nil {
		return mapAdapterError(err)
	}

	if err = f.localStore.FileRepository.ReplaceAll(ctx, userID, files); err != nil {
		return fmt.Errorf("replace file metadata cache: %w", err)
	}

	return nil
}

func (f *clientFileService) CreateShareLink(ctx context.Context, name string) (string, error) {
	userID, err := f.auth.CurrentUserID()
	if err != nil {
		return "", err
	}

	snap, err := f.session.Snapshot()
	if err != nil {
		return "", err
	}

	file, err := f.lookupFile(ctx, userID, name)
	if err != nil {
		return "", err
	}

	wrappedFileKey, err := base64.StdEncoding.DecodeString(file.WrappedFileKey)
	if err != nil {
		return "", fmt.Errorf("decode wrapped file key: %w", err)
	}

	accountKey, err := f.keyVault.UnwrapKey(snap.WrappedAccountKey, snap.MasterEncKey)
	if err != nil {
		return "", fmt.Errorf("unwrap account key: %w", err)
	}
	defer crypto.Zero(accountKey)

	fileKey, err := f.keyVault.UnwrapKey(wrappedFileKey, accountKey)
	if err != nil {
		return "", fmt.Errorf("unwrap file key: %w", err)
	}
	defer crypto.Zero(fileKey)

	// The raw file key rides in the URL fragment: user agents never send
	// fragments over the wire, so the server cannot learn the key even
	// when it serves the link's blob.
	link := fmt.Sprintf("%s/share/%s#%s",
		f.shareBase,
		file.FileID,
		base64.RawURLEncoding.EncodeToString(fileKey),
	)

	return link, nil
}

func (f *clientFileService) OpenShareLink(ctx context.Context, link string) ([]byte, error) {
	fileID, fileKey, err := parseShareLink(link)
	if err != nil {
		return nil, err
	}
	defer crypto.Zero(fileKey)

	envelope, err := f.adapter.DownloadSharedFile(ctx, fileID)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	plaintext, err := f.keyVault.DecryptFileWithRawKey(ctx, fileKey, envelope)
	if err != nil {
		return nil, fmt.Errorf("decrypt shared file: %w", err)
	}

	return plaintext, nil
}

// lookupFile resolves a name through the local cache, refreshing the cache
// from the server once on a miss before giving up.
func (f *clientFileService) lookupFile(ctx context.Context, userID int64, name string) (models.FileObject, error) {
	file, err := f.localStore.FileRepository.GetFileByName(ctx, userID, name)
	if err == nil {
		return file, nil
	}
	if !errors.Is(err, store.ErrFileNotFound) {
		return models.FileObject{}, err
	}

	if refreshErr := f.RefreshIndex(ctx); refreshErr != nil {
		return models.FileObject{}, refreshErr
	}

	file, err = f.localStore.FileRepository.GetFileByName(ctx, userID, name)
	if errors.Is(err, store.ErrFileNotFound) {
		return models.FileObject{}, fmt.Errorf("%w (name=%s)", ErrFileNotFound, name)
	}
	return file, err
}

func parseShareLink(link string) (fileID string, fileKey []byte, err error) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidShareLink, err)
	}

	idx := strings.LastIndex(u.Path, "/share/")
	if idx == -1 || u.Fragment == "" {
		return "", nil, ErrInvalidShareLink
	}

	fileID = u.Path[idx+len("/share/"):]
	if fileID == "" || strings.Contains(fileID, "/") {
		return "", nil, ErrInvalidShareLink
	}

	fileKey, err = base64.RawURLEncoding.DecodeString(u.Fragment)
	if err != nil || len(fileKey) != 32 {
		return "", nil, ErrInvalidShareLink
	}

	return fileID, fileKey, nil
}
