package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/reznik99/cloud-storage-client/internal/logger"
	"github.com/reznik99/cloud-storage-client/models"
)

type localFileRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalFileRepository creates the SQLite-backed implementation of
// [LocalFileRepository].
func NewLocalFileRepository(db *DB, logger *logger.Logger) LocalFileRepository {
	return &localFileRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localFileRepository) SaveFile(ctx context.Context, userID int64, file models.FileObject) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpsertFileQuery(userID, file)
	if err != nil {
		log.Err(err).
			Str("func", "localFileRepository.SaveFile").
			Int64("user_id", userID).
			Str("file_id", file.FileID).
			Msg("failed to build upsert for file metadata")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localFileRepository.SaveFile").
			Int64("user_id", userID).
			Str("file_id", file.FileID).
			Msg("failed to execute upsert for file metadata")
		return fmt.Errorf("failed to save file metadata (name=%s): %w", file.Name, err)
	}

	if affected, raErr := result.RowsAffected(); raErr == nil && affected == 0 {
		return fmt.Errorf("%w (name=%s)", ErrFileNotSaved, file.Name)
	}

	return nil
}

func (l *localFileRepository) GetFileByName(ctx context.Context, userID int64, name string) (models.FileObject, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectFileByNameQuery(userID, name)
	if err != nil {
		log.Err(err).
			Str("func", "localFileRepository.GetFileByName").
			Int64("user_id", userID).
			Msg("failed to build query for file metadata")
		return models.FileObject{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var file models.FileObject
	row := l.DB.QueryRowContext(ctx, query, args...)
	scanErr := row.Scan(
		&file.UserID,
		&file.FileID,
		&file.Name,
		&file.Size,
		&file.WrappedFileKey,
		&file.CreatedAt,
		&file.UpdatedAt,
	)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.FileObject{}, fmt.Errorf("%w (name=%s)", ErrFileNotFound, name)
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "localFileRepository.GetFileByName").
			Int64("user_id", userID).
			Msg("failed to scan file metadata row")
		return models.FileObject{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return file, nil
}

func (l *localFileRepository) GetAllFiles(ctx context.Context, userID int64) ([]models.FileObject, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllFilesQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "localFileRepository.GetAllFiles").
			Int64("user_id", userID).
			Msg("failed to build query for all file metadata")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localFileRepository.GetAllFiles").
			Int64("user_id", userID).
			Msg("failed to execute query for all file metadata")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var files []models.FileObject

	for rows.Next() {
		var file models.FileObject

		scanErr := rows.Scan(
			&file.UserID,
			&file.FileID,
			&file.Name,
			&file.Size,
			&file.WrappedFileKey,
			&file.CreatedAt,
			&file.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "localFileRepository.GetAllFiles").
				Int64("user_id", userID).
				Msg("failed to scan file metadata row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		files = append(files, file)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "localFileRepository.GetAllFiles").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating file metadata rows: %w", rowsErr)
	}

	return files, nil
}

func (l *localFileRepository) DeleteFile(ctx context.Context, userID int64, name string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteFileByNameQuery(userID, name)
	if err != nil {
		log.Err(err).
			Str("func", "localFileRepository.DeleteFile").
			Int64("user_id", userID).
			Msg("failed to build delete for file metadata")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localFileRepository.DeleteFile").
			Int64("user_id", userID).
			Str("name", name).
			Msg("failed to execute delete for file metadata")
		return fmt.Errorf("failed to delete file metadata (name=%s): %w", name, err)
	}

	return nil
}

func (l *localFileRepository) ReplaceAll(ctx context.Context, userID int64, files []models.FileObject) error {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "localFileRepository.ReplaceAll").
			Int64("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := buildDeleteAllFilesQuery(userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "localFileRepository.ReplaceAll").
			Int64("user_id", userID).
			Msg("failed to clear file metadata cache")
		return fmt.Errorf("failed to clear file metadata cache: %w", err)
	}

	for _, file := range files {
		query, args, err = buildUpsertFileQuery(userID, file)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "localFileRepository.ReplaceAll").
				Int64("user_id", userID).
				Str("file_id", file.FileID).
				Msg("failed to insert file metadata row")
			return fmt.Errorf("failed to save file metadata (name=%s): %w", file.Name, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "localFileRepository.ReplaceAll").
			Int64("user_id", userID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
