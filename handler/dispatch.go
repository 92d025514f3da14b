package handler

import (
	"encoding/json"

	"order_console/errno"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// actionRequest ซองคำขอของ action API ทุก action วิ่งผ่าน POST เดียว
type actionRequest struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatch แตก action แล้วส่งต่อให้ handler ของแต่ละงาน
func Dispatch(c *gin.Context) {
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		zap.L().Warn("bad action request", zap.Error(err))
		ResponseError(c, errno.ErrBadPayload)
		return
	}

	switch req.Action {
	case "getAllData":
		getAllData(c)
	case "getOrderById":
		getOrderByID(c, req.Payload)
	case "getSheetData":
		getSheetData(c, req.Payload)
	case "createOrder":
		createOrder(c, req.Payload)
	case "updateOrder":
		updateOrder(c, req.Payload)
	case "updateCustomerOrder":
		updateCustomerOrder(c, req.Payload)
	case "createCustomer":
		createCustomer(c, req.Payload)
	case "updateCustomer":
		updateCustomer(c, req.Payload)
	case "createProduct":
		createProduct(c, req.Payload)
	case "updateProduct":
		updateProduct(c, req.Payload)
	case "deleteItems":
		deleteItems(c, req.Payload)
	case "moveOrdersToSheet":
		moveOrdersToSheet(c, req.Payload)
	case "uploadFile":
		uploadFile(c, req.Payload)
	default:
		zap.L().Warn("unknown action", zap.String("action", req.Action))
		ResponseError(c, errno.ErrUnknownAction)
	}
}
