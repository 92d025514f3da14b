package upload

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order_console/config"
	"order_console/errno"
	"order_console/third_party/snowflake"
)

func setupUpload(t *testing.T) {
	t.Helper()
	require.NoError(t, snowflake.Init("2025-01-01", 1))
	config.Conf.BaseURL = "http://127.0.0.1:8084"
	config.Conf.UploadConfig = &config.UploadConfig{
		Dir:             t.TempDir(),
		SlipFolderID:    "slip-folder",
		ProductFolderID: "product-folder",
	}
}

func TestSaveDataURL(t *testing.T) {
	setupUpload(t)
	raw := []byte("fake png bytes")

	url, err := Save(context.Background(), &Param{
		Base64Data: "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw),
		MimeType:   "image/png",
		FolderID:   "slip-folder",
		FileName:   "คุณสมชาย 350",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://127.0.0.1:8084/files/slips/"), url)

	// ไฟล์บนดิสก์ต้องเป็นเนื้อเดิมหลังถอด base64
	entries, err := os.ReadDir(filepath.Join(config.Conf.UploadConfig.Dir, "slips"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(filepath.Join(config.Conf.UploadConfig.Dir, "slips", entries[0].Name()))
	require.NoError(t, err)
	assert.Equal(t, raw, data)
}

func TestSavePlainBase64(t *testing.T) {
	setupUpload(t)
	raw := []byte("product image")

	url, err := Save(context.Background(), &Param{
		Base64Data: base64.StdEncoding.EncodeToString(raw),
		MimeType:   "image/jpeg",
		FolderID:   "product-folder",
		FileName:   "เสื้อยืดสีขาว",
	})
	require.NoError(t, err)
	assert.Contains(t, url, "/files/products/")
}

func TestSaveUnknownFolder(t *testing.T) {
	setupUpload(t)

	_, err := Save(context.Background(), &Param{
		Base64Data: base64.StdEncoding.EncodeToString([]byte("x")),
		MimeType:   "image/png",
		FolderID:   "somewhere-else",
		FileName:   "f",
	})
	assert.ErrorIs(t, err, errno.ErrBadPayload)
}

func TestSaveBadBase64(t *testing.T) {
	setupUpload(t)

	_, err := Save(context.Background(), &Param{
		Base64Data: "%%% not base64 %%%",
		MimeType:   "image/png",
		FolderID:   "slip-folder",
		FileName:   "f",
	})
	assert.ErrorIs(t, err, errno.ErrUploadFailed)
}
