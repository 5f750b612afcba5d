// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/reznik99/cloud-storage-client/models"
)

// queryBuilder produces SQLite-flavoured statements (? placeholders).
var queryBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var fileColumns = []string{
	"user_id",
	"file_id",
	"name",
	"size",
	"wrapped_file_key",
	"created_at",
	"updated_at",
}

func buildUpsertFileQuery(userID int64, file models.FileObject) (string, []any, error) {
	return queryBuilder.
		Replace(file.TableName()).
		Columns(fileColumns...).
		Values(
			userID,
			file.FileID,
			file.Name,
			file.Size,
			file.WrappedFileKey,
			file.CreatedAt,
			file.UpdatedAt,
		).
		ToSql()
}

func buildSelectFileByNameQuery(userID int64, name string) (string, []any, error) {
	return queryBuilder.
		Select(fileColumns...).
		From(models.FileObject{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildSelectAllFilesQuery(userID int64) (string, []any, error) {
	return queryBuilder.
		Select(fileColumns...).
		From(models.FileObject{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("name ASC").
		ToSql()
}

func buildDeleteFileByNameQuery(userID int64, name string) (string, []any, error) {
	return queryBuilder.
		Delete(models.FileObject{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"name": name}).
		ToSql()
}

func buildDeleteAllFilesQuery(userID int64) (string, []any, error) {
	return queryBuilder.
		Delete(models.FileObject{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
