package handler

import (
	"encoding/json"

	"order_console/biz/product"
	"order_console/errno"
	"order_console/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func createProduct(c *gin.Context, payload json.RawMessage) {
	var data model.Product
	if err := json.Unmarshal(payload, &data); err != nil {
		ResponseError(c, errno.ErrBadPayload)
		return
	}

	if err := product.Create(c.Request.Context(), &data); err != nil {
		zap.L().Error("product.Create failed", zap.Error(err))
		ResponseError(c, err)
		return
	}
	ResponseSuccess(c, data)
}

func updateProduct(c *gin.Context, payload json.RawMessage) {
	var data model.Product
	if err := json.Unmarshal(payload, &data); err != nil || data.ProductID == "" {
		ResponseError(c, errno.ErrBadPayload)
		return
	}

	if err := product.Update(c.Request.Context(), &data); err != nil {
		zap.L().Error("product.Update failed",
			zap.String("productID", data.ProductID), zap.Error(err))
		ResponseError(c, err)
		return
	}
	ResponseSuccess(c, nil)
}
