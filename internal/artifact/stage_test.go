package artifact

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStage_LocalFile(t *testing.T) {
	src := filepath.Join(t.TempDir(), "app-1.0.war")
	require.NoError(t, os.WriteFile(src, []byte("war-bytes"), 0o644))

	tempDir := t.TempDir()
	staged, cleanup, err := Stage(context.Background(), src, tempDir)
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, "app-1.0.war", filepath.Base(staged))
	data, err := os.ReadFile(staged)
	require.NoError(t, err)
	assert.Equal(t, []byte("war-bytes"), data)

	cleanup()
	_, err = os.Stat(staged)
	assert.True(t, os.IsNotExist(err), "cleanup must remove the staged copy")
}

func TestStage_HTTPFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "remote-war")
	}))
	defer srv.Close()

	staged, cleanup, err := Stage(context.Background(), srv.URL+"/wars/app-2.0.war", t.TempDir())
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, "app-2.0.war", filepath.Base(staged))
	data, err := os.ReadFile(staged)
	require.NoError(t, err)
	assert.Equal(t, []byte("remote-war"), data)
}

func TestStage_HTTPFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, _, err := Stage(context.Background(), srv.URL+"/missing.war", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestStage_MissingLocalFile(t *testing.T) {
	_, _, err := Stage(context.Background(), filepath.Join(t.TempDir(), "nope.war"), t.TempDir())
	require.Error(t, err)
}
