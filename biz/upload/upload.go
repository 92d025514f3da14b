// Package upload เก็บไฟล์ที่อัปโหลด (สลิปโอนเงิน รูปสินค้า) ลงดิสก์
// แทนที่โฟลเดอร์บน Drive ของระบบเดิม folderId เดิมกลายเป็นชื่อโฟลเดอร์ย่อยที่คอนฟิกไว้
package upload

import (
	"context"
	"encoding/base64"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"order_console/config"
	"order_console/errno"
	"order_console/third_party/snowflake"

	"go.uber.org/zap"
)

// Param payload ของ action uploadFile ตามสัญญาเดิม
type Param struct {
	Base64Data string `json:"base64Data"`
	MimeType   string `json:"mimeType"`
	FolderID   string `json:"folderId"`
	FileName   string `json:"fileName"`
}

// Save ถอด base64 แล้วเขียนไฟล์ลงโฟลเดอร์ตาม folderId คืน URL สำหรับเปิดดู
// ชื่อไฟล์จริงต่อท้ายด้วย snowflake ID กันชื่อชนกัน
func Save(ctx context.Context, param *Param) (string, error) {
	folder, err := resolveFolder(param.FolderID)
	if err != nil {
		return "", err
	}

	data, err := decodeBase64(param.Base64Data)
	if err != nil {
		zap.L().Error("decode uploaded file failed", zap.Error(err))
		return "", errno.ErrUploadFailed
	}

	dir := filepath.Join(config.Conf.UploadConfig.Dir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		zap.L().Error("create upload dir failed", zap.String("dir", dir), zap.Error(err))
		return "", errno.ErrUploadFailed
	}

	name := fmt.Sprintf("%s-%d%s",
		sanitizeFileName(param.FileName), snowflake.GenID(), extFromMime(param.MimeType))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		zap.L().Error("write uploaded file failed", zap.String("path", path), zap.Error(err))
		return "", errno.ErrUploadFailed
	}

	return fmt.Sprintf("%s/files/%s/%s", config.Conf.BaseURL, folder, name), nil
}

// resolveFolder แปลง folderId ฝั่ง client เป็นโฟลเดอร์ย่อยบนดิสก์
// folderId ที่ไม่รู้จักถือเป็น payload ผิด ไม่เขียนไฟล์มั่ว ๆ
func resolveFolder(folderID string) (string, error) {
	cfg := config.Conf.UploadConfig
	switch folderID {
	case cfg.SlipFolderID:
		return "slips", nil
	case cfg.ProductFolderID:
		return "products", nil
	}
	return "", errno.ErrBadPayload
}

// decodeBase64 รองรับทั้ง data URL ("data:image/png;base64,....") และ base64 เปล่า
func decodeBase64(s string) ([]byte, error) {
	if idx := strings.Index(s, ","); idx >= 0 && strings.HasPrefix(s, "data:") {
		s = s[idx+1:]
	}
	return base64.StdEncoding.DecodeString(s)
}

// sanitizeFileName กันชื่อไฟล์หลุดออกนอกโฟลเดอร์
func sanitizeFileName(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" {
		name = "file"
	}
	return name
}

// extFromMime เดานามสกุลไฟล์จาก mime type เดาไม่ได้ใช้ .bin
func extFromMime(mimeType string) string {
	exts, err := mime.ExtensionsByType(mimeType)
	if err != nil || len(exts) == 0 {
		return ".bin"
	}
	return exts[0]
}
