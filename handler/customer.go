package handler

import (
	"encoding/json"

	"order_console/biz/customer"
	"order_console/errno"
	"order_console/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func createCustomer(c *gin.Context, payload json.RawMessage) {
	var data model.Customer
	if err := json.Unmarshal(payload, &data); err != nil {
		ResponseError(c, errno.ErrBadPayload)
		return
	}

	if err := customer.Create(c.Request.Context(), &data); err != nil {
		zap.L().Error("customer.Create failed", zap.Error(err))
		ResponseError(c, err)
		return
	}
	ResponseSuccess(c, data)
}

func updateCustomer(c *gin.Context, payload json.RawMessage) {
	var data model.Customer
	if err := json.Unmarshal(payload, &data); err != nil || data.CustomerID == "" {
		ResponseError(c, errno.ErrBadPayload)
		return
	}

	if err := customer.Update(c.Request.Context(), &data); err != nil {
		zap.L().Error("customer.Update failed",
			zap.String("customerID", data.CustomerID), zap.Error(err))
		ResponseError(c, err)
		return
	}
	ResponseSuccess(c, nil)
}
