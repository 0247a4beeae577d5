package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cmlabs-hris/employee-portal-go/internal/config"
	"github.com/cmlabs-hris/employee-portal-go/internal/pkg/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStorage runs the contract every slot backend must satisfy.
func exerciseStorage(t *testing.T, s Storage) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Read(ctx, "employeeLeaves")
	assert.ErrorIs(t, err, ErrNotFound)

	ok, err := s.Exists(ctx, "employeeLeaves")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Write(ctx, "employeeLeaves", []byte(`[{"id":"1"}]`)))
	got, err := s.Read(ctx, "employeeLeaves")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1"}]`, string(got))

	require.NoError(t, s.Write(ctx, "employeeLeaves", []byte(`[]`)))
	got, err = s.Read(ctx, "employeeLeaves")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	ok, err = s.Exists(ctx, "employeeLeaves")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLocalStorage(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	exerciseStorage(t, s)
}

func TestLocalStorage_WritesJSONFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	require.NoError(t, err)

	require.NoError(t, s.Write(context.Background(), "employeeProfile", []byte(`{"name":"Ada"}`)))

	raw, err := os.ReadFile(filepath.Join(dir, "employeeProfile.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"name":"Ada"}`, string(raw))
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	err = s.Write(context.Background(), "../escape", []byte("x"))
	assert.Error(t, err)

	_, err = s.Read(context.Background(), "")
	assert.Error(t, err)
}

func TestMemoryStorage(t *testing.T) {
	exerciseStorage(t, NewMemoryStorage())
}

func TestMemoryStorage_FailWrites(t *testing.T) {
	s := NewMemoryStorage()
	boom := errors.New("quota exceeded")

	s.FailWrites(boom)
	assert.ErrorIs(t, s.Write(context.Background(), "k", []byte("1")), boom)
	assert.Equal(t, 0, s.WriteCount("k"))

	s.FailWrites(nil)
	require.NoError(t, s.Write(context.Background(), "k", []byte("1")))
	assert.Equal(t, 1, s.WriteCount("k"))
}

func TestSQLiteStorage(t *testing.T) {
	s, err := NewSQLiteStorage(filepath.Join(t.TempDir(), "nested", "portal.db"))
	require.NoError(t, err)
	defer s.Close()

	exerciseStorage(t, s)
}

func TestSQLiteStorage_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.db")

	s, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	require.NoError(t, s.Write(context.Background(), "employeeAttendance", []byte(`[1]`)))
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStorage(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Read(context.Background(), "employeeAttendance")
	require.NoError(t, err)
	assert.Equal(t, `[1]`, string(got))
}

func TestRedisStorage(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR not set, skipping redis storage test")
	}

	s, err := NewRedisStorage(context.Background(), addr, "", 0, "portal-test:")
	require.NoError(t, err)
	defer s.Close()

	exerciseStorage(t, s)
}

func TestPostgresStorage(t *testing.T) {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping postgres storage test")
	}

	ctx := context.Background()
	db, err := database.NewPostgreSQLDB(ctx, dsn)
	require.NoError(t, err)

	s, err := NewPostgresStorage(ctx, db)
	require.NoError(t, err)
	defer s.Close()

	exerciseStorage(t, s)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(context.Background(), config.StorageConfig{Driver: "local", BasePath: dir, KeyPrefix: "tenant-a"})
	require.NoError(t, err)
	local, ok := s.(*LocalStorage)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "tenant-a"), local.basePath)

	s, err = Open(context.Background(), config.StorageConfig{Driver: "sqlite", SQLitePath: filepath.Join(dir, "p.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStorage{}, s)
	require.NoError(t, s.Close())

	_, err = Open(context.Background(), config.StorageConfig{Driver: "tape"})
	assert.Error(t, err)
}
