package handler

import (
	"encoding/json"

	"order_console/biz/upload"
	"order_console/errno"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func uploadFile(c *gin.Context, payload json.RawMessage) {
	var param upload.Param
	if err := json.Unmarshal(payload, &param); err != nil || param.Base64Data == "" {
		ResponseError(c, errno.ErrBadPayload)
		return
	}

	fileURL, err := upload.Save(c.Request.Context(), &param)
	if err != nil {
		zap.L().Error("upload.Save failed", zap.String("fileName", param.FileName), zap.Error(err))
		ResponseError(c, err)
		return
	}
	ResponseSuccess(c, gin.H{"fileUrl": fileURL})
}
