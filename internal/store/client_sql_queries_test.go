// SPDX-License-Identifier: Apache-2.0

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reznik99/cloud-storage-client/models"
)

func Test_buildSelectAllFilesQuery(t *testing.T) {
	query, args, err := buildSelectAllFilesQuery(42)
	require.NoError(t, err)

	require.Len(t, args, 1)
	assert.Equal(t, int64(42), args[0])

	q := strings.ToLower(query)
	require.Contains(t, q, "select")
	require.Contains(t, q, "from files")
	require.Contains(t, q, "where")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "order by name")

	// placeholder format should be ? (SQLite)
	require.Contains(t, query, "?")
	require.NotContains(t, query, "$1")

	for _, c := range fileColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildSelectFileByNameQuery(t *testing.T) {
	query, args, err := buildSelectFileByNameQuery(7, "notes.txt")
	require.NoError(t, err)

	require.Len(t, args, 2)
	assert.ElementsMatch(t, []any{int64(7), "notes.txt"}, args)

	q := strings.ToLower(query)
	require.Contains(t, q, "from files")
	require.Contains(t, q, "user_id")
	require.Contains(t, q, "name")
}

func Test_buildUpsertFileQuery(t *testing.T) {
	now := time.Now()
	file := models.FileObject{
		FileID:         "file-id",
		Name:           "notes.txt",
		Size:           128,
		WrappedFileKey: "wrapped",
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	query, args, err := buildUpsertFileQuery(42, file)
	require.NoError(t, err)

	require.Len(t, args, len(fileColumns))
	assert.Equal(t, int64(42), args[0])
	assert.Equal(t, "file-id", args[1])

	q := strings.ToLower(query)
	require.Contains(t, q, "replace into files")
	for _, c := range fileColumns {
		require.Contains(t, q, c)
	}
}

func Test_buildDeleteQueries(t *testing.T) {
	query, args, err := buildDeleteFileByNameQuery(42, "notes.txt")
	require.NoError(t, err)
	require.Len(t, args, 2)
	require.Contains(t, strings.ToLower(query), "delete from files")

	query, args, err = buildDeleteAllFilesQuery(42)
	require.NoError(t, err)
	require.Len(t, args, 1)
	require.Contains(t, strings.ToLower(query), "delete from files")
	require.NotContains(t, strings.ToLower(query), "name")
}
