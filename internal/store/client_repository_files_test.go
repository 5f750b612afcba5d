package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/reznik99/cloud-storage-client/internal/logger"
	"github.com/reznik99/cloud-storage-client/models"
)

func newTestFileRepo(t *testing.T) (*localFileRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &localFileRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func testFile(name string) models.FileObject {
	now := time.Now()
	return models.FileObject{
		FileID:         "0198c4e2-0000-7000-8000-000000000001",
		Name:           name,
		Size:           128,
		WrappedFileKey: "d3JhcHBlZC1maWxlLWtleQ==",
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func TestSaveFile_Success(t *testing.T) {
	repo, mock, db := newTestFileRepo(t)
	defer db.Close()

	file := testFile("notes.txt")

	mock.ExpectExec("REPLACE INTO files").
		WithArgs(int64(1), file.FileID, file.Name, file.Size, file.WrappedFileKey, file.CreatedAt, file.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.SaveFile(context.Background(), 1, file); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveFile_NoRowsAffected(t *testing.T) {
	repo, mock, db := newTestFileRepo(t)
	defer db.Close()

	mock.ExpectExec("REPLACE INTO files").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SaveFile(context.Background(), 1, testFile("notes.txt"))
	if !errors.Is(err, ErrFileNotSaved) {
		t.Fatalf("expected ErrFileNotSaved, got %v", err)
	}
}

func TestGetFileByName_Success(t *testing.T) {
	repo, mock, db := newTestFileRepo(t)
	defer db.Close()

	file := testFile("notes.txt")

	rows := sqlmock.
		NewRows(fileColumns).
		AddRow(int64(1), file.FileID, file.Name, file.Size, file.WrappedFileKey, file.CreatedAt, file.UpdatedAt)

	mock.ExpectQuery("SELECT .+ FROM files").
		WithArgs(int64(1), "notes.txt").
		WillReturnRows(rows)

	got, err := repo.GetFileByName(context.Background(), 1, "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FileID != file.FileID {
		t.Errorf("expected file_id %s, got %s", file.FileID, got.FileID)
	}
	if got.WrappedFileKey != file.WrappedFileKey {
		t.Errorf("expected wrapped key %s, got %s", file.WrappedFileKey, got.WrappedFileKey)
	}
}

func TestGetFileByName_NotFound(t *testing.T) {
	repo, mock, db := newTestFileRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM files").
		WithArgs(int64(1), "missing.txt").
		WillReturnRows(sqlmock.NewRows(fileColumns))

	_, err := repo.GetFileByName(context.Background(), 1, "missing.txt")
	if !errors.Is(err, ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound, got %v", err)
	}
}

func TestGetAllFiles_Success(t *testing.T) {
	repo, mock, db := newTestFileRepo(t)
	defer db.Close()

	a := testFile("a.txt")
	b := testFile("b.txt")

	rows := sqlmock.
		NewRows(fileColumns).
		AddRow(int64(1), a.FileID, a.Name, a.Size, a.WrappedFileKey, a.CreatedAt, a.UpdatedAt).
		AddRow(int64(1), b.FileID, b.Name, b.Size, b.WrappedFileKey, b.CreatedAt, b.UpdatedAt)

	mock.ExpectQuery("SELECT .+ FROM files").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	files, err := repo.GetAllFiles(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Name != "a.txt" || files[1].Name != "b.txt" {
		t.Errorf("unexpected file names: %s, %s", files[0].Name, files[1].Name)
	}
}

func TestGetAllFiles_QueryError(t *testing.T) {
	repo, mock, db := newTestFileRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM files").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.GetAllFiles(context.Background(), 1)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestDeleteFile_Success(t *testing.T) {
	repo, mock, db := newTestFileRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM files").
		WithArgs(int64(1), "notes.txt").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteFile(context.Background(), 1, "notes.txt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestReplaceAll_Success(t *testing.T) {
	repo, mock, db := newTestFileRepo(t)
	defer db.Close()

	a := testFile("a.txt")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM files").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("REPLACE INTO files").
		WithArgs(int64(1), a.FileID, a.Name, a.Size, a.WrappedFileKey, a.CreatedAt, a.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.ReplaceAll(context.Background(), 1, []models.FileObject{a})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestReplaceAll_RollsBackOnInsertError(t *testing.T) {
	repo, mock, db := newTestFileRepo(t)
	defer db.Close()

	a := testFile("a.txt")

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM files").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("REPLACE INTO files").
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.ReplaceAll(context.Background(), 1, []models.FileObject{a})
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
