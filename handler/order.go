package handler

import (
	"encoding/json"
	"errors"

	"order_console/biz/customer"
	"order_console/biz/order"
	"order_console/biz/product"
	"order_console/errno"
	"order_console/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// allData โครงข้อมูลตอบ getAllData โหลดยกชุดทุกคอลเลกชัน
type allData struct {
	Orders     []model.Order    `json:"orders"`
	Customers  []model.Customer `json:"customers"`
	Products   []model.Product  `json:"products"`
	SheetNames []string         `json:"sheetNames"`
}

func getAllData(c *gin.Context) {
	ctx := c.Request.Context()

	orders, err := order.List(ctx)
	if err != nil {
		ResponseError(c, err)
		return
	}
	customers, err := customer.List(ctx)
	if err != nil {
		ResponseError(c, err)
		return
	}
	products, err := product.List(ctx)
	if err != nil {
		ResponseError(c, err)
		return
	}
	sheetNames, err := order.SheetNames(ctx)
	if err != nil {
		ResponseError(c, err)
		return
	}

	ResponseSuccess(c, allData{
		Orders:     orders,
		Customers:  customers,
		Products:   products,
		SheetNames: sheetNames,
	})
}

func getOrderByID(c *gin.Context, payload json.RawMessage) {
	var param struct {
		OrderID string `json:"orderId"`
	}
	if err := json.Unmarshal(payload, &param); err != nil || param.OrderID == "" {
		ResponseError(c, errno.ErrBadPayload)
		return
	}

	data, err := order.GetByID(c.Request.Context(), param.OrderID)
	if errors.Is(err, errno.ErrOrderNotFound) {
		// ไม่พบ = data เป็น null ฝั่ง client เช็คเองตามสัญญาเดิม
		ResponseSuccess(c, nil)
		return
	}
	if err != nil {
		ResponseError(c, err)
		return
	}
	ResponseSuccess(c, data)
}

func getSheetData(c *gin.Context, payload json.RawMessage) {
	var param struct {
		SheetName string `json:"sheetName"`
	}
	if err := json.Unmarshal(payload, &param); err != nil || param.SheetName == "" {
		ResponseError(c, errno.ErrBadPayload)
		return
	}

	orders, err := order.SheetData(c.Request.Context(), param.SheetName)
	if err != nil {
		ResponseError(c, err)
		return
	}
	ResponseSuccess(c, gin.H{"orders": orders})
}

func createOrder(c *gin.Context, payload json.RawMessage) {
	var data model.Order
	if err := json.Unmarshal(payload, &data); err != nil {
		ResponseError(c, errno.ErrBadPayload)
		return
	}

	if err := order.Create(c.Request.Context(), &data); err != nil {
		zap.L().Error("order.Create failed", zap.Error(err))
		ResponseError(c, err)
		return
	}
	ResponseSuccess(c, data)
}

func updateOrder(c *gin.Context, payload json.RawMessage) {
	var data model.Order
	if err := json.Unmarshal(payload, &data); err != nil || data.OrderID == "" {
		ResponseError(c, errno.ErrBadPayload)
		return
	}

	if err := order.Update(c.Request.Context(), &data); err != nil {
		zap.L().Error("order.Update failed", zap.String("orderID", data.OrderID), zap.Error(err))
		ResponseError(c, err)
		return
	}
	ResponseSuccess(c, nil)
}

func updateCustomerOrder(c *gin.Context, payload json.RawMessage) {
	var param order.ConfirmParam
	if err := json.Unmarshal(payload, &param); err != nil || param.OrderID == "" {
		ResponseError(c, errno.ErrBadPayload)
		return
	}

	if err := order.ConfirmByCustomer(c.Request.Context(), &param); err != nil {
		zap.L().Error("order.ConfirmByCustomer failed",
			zap.String("orderID", param.OrderID), zap.Error(err))
		ResponseError(c, err)
		return
	}
	ResponseSuccess(c, nil)
}

func deleteItems(c *gin.Context, payload json.RawMessage) {
	var param struct {
		SheetName string   `json:"sheetName"`
		IDs       []string `json:"ids"`
	}
	if err := json.Unmarshal(payload, &param); err != nil || param.SheetName == "" {
		ResponseError(c, errno.ErrBadPayload)
		return
	}

	ctx := c.Request.Context()
	var err error
	// ชื่อชีตเลือกปลายทาง ชีตรายชื่อ/สินค้าคือลูกค้าและสินค้า นอกนั้นเป็นชีตออร์เดอร์
	switch param.SheetName {
	case model.SheetCustomers:
		err = customer.Delete(ctx, param.IDs)
	case model.SheetProducts:
		err = product.Delete(ctx, param.IDs)
	default:
		err = order.Delete(ctx, param.SheetName, param.IDs)
	}
	if err != nil {
		zap.L().Error("delete items failed",
			zap.String("sheetName", param.SheetName), zap.Int("count", len(param.IDs)), zap.Error(err))
		ResponseError(c, err)
		return
	}
	ResponseSuccess(c, nil)
}

func moveOrdersToSheet(c *gin.Context, payload json.RawMessage) {
	var param struct {
		IDs             []string `json:"ids"`
		TargetSheetName string   `json:"targetSheetName"`
	}
	if err := json.Unmarshal(payload, &param); err != nil {
		ResponseError(c, errno.ErrBadPayload)
		return
	}

	if err := order.MoveToSheet(c.Request.Context(), param.IDs, param.TargetSheetName); err != nil {
		ResponseError(c, err)
		return
	}
	ResponseSuccess(c, nil)
}
