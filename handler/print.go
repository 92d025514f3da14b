package handler

import (
	"net/http"

	"order_console/biz/order"
	"order_console/biz/printer"
	"order_console/errno"
	"order_console/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// printParam คำขอพิมพ์ฉลาก เลือกชีต รายการออร์เดอร์ และขนาดฉลาก
type printParam struct {
	SheetName string   `json:"sheetName"`
	IDs       []string `json:"ids"`
	Format    string   `json:"format"`
}

// PrintLabels สร้างเอกสารฉลากแล้วตอบเป็น HTML ตรง ๆ เปิดพรีวิว/สั่งพิมพ์ได้ทันที
func PrintLabels(c *gin.Context) {
	var param printParam
	if err := c.ShouldBindJSON(&param); err != nil {
		ResponseError(c, errno.ErrBadPayload)
		return
	}
	if param.SheetName == "" {
		param.SheetName = model.SheetOrders
	}

	ctx := c.Request.Context()
	var orders []model.Order
	var err error
	if param.SheetName == model.SheetOrders {
		orders, err = order.List(ctx)
	} else {
		orders, err = order.SheetData(ctx, param.SheetName)
	}
	if err != nil {
		ResponseError(c, err)
		return
	}

	// เรียงหน้าให้ตรงลำดับที่เลือก ID ที่หาไม่เจอถูกข้ามเงียบ ๆ เหมือนหน้าจอเดิม
	byID := make(map[string]model.Order, len(orders))
	for _, o := range orders {
		byID[o.OrderID] = o
	}
	selected := make([]model.Order, 0, len(param.IDs))
	for _, id := range param.IDs {
		if o, ok := byID[id]; ok {
			selected = append(selected, o)
		}
	}

	doc, err := printer.Generate(selected, param.Format)
	if err != nil {
		zap.L().Error("printer.Generate failed", zap.String("format", param.Format), zap.Error(err))
		ResponseError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc))
}
