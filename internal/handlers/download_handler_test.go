package handlers

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atscv/cv-converter/internal/services"
)

func newDownloadApp(store services.FileStore) *fiber.App {
	app := fiber.New()
	handler := NewDownloadHandler(store)
	app.Get("/api/v1/cv/download", handler.HandleDownload)
	return app
}

func TestDownloadHandler_OneShotDownload(t *testing.T) {
	store := services.NewFileStore(time.Hour, time.Hour)
	defer store.Stop()
	app := newDownloadApp(store)

	token := store.Save([]byte("artifact bytes"))

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/cv/download?fileId="+token+"&filename=ATS_Friendly_CV.pdf", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/octet-stream", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, `attachment; filename="ATS_Friendly_CV.pdf"`, resp.Header.Get(fiber.HeaderContentDisposition))
	assert.Contains(t, resp.Header.Get(fiber.HeaderCacheControl), "no-store")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, []byte("artifact bytes"), body)

	// The same token must not work twice
	req, _ = http.NewRequest(http.MethodGet, "/api/v1/cv/download?fileId="+token+"&filename=ATS_Friendly_CV.pdf", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDownloadHandler_UnknownToken(t *testing.T) {
	store := services.NewFileStore(time.Hour, time.Hour)
	defer store.Stop()
	app := newDownloadApp(store)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/cv/download?fileId=no-such-token&filename=x.pdf", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDownloadHandler_MissingToken(t *testing.T) {
	store := services.NewFileStore(time.Hour, time.Hour)
	defer store.Stop()
	app := newDownloadApp(store)

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/cv/download", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
