package handler

import (
	"order_console/biz/customer"
	"order_console/biz/product"
	"order_console/errno"
	"order_console/model"
	"order_console/pkg/autocomplete"

	"github.com/gin-gonic/gin"
)

// Suggest endpoint เติมคำอัตโนมัติของช่องชื่อลูกค้าและชื่อสินค้า
// GET /api/suggest?source=customers|products&q=คำค้น
func Suggest(c *gin.Context) {
	q := c.Query("q")

	switch c.Query("source") {
	case "customers":
		data, err := customer.List(c.Request.Context())
		if err != nil {
			ResponseError(c, err)
			return
		}
		ac := autocomplete.New(
			func() []model.Customer { return data },
			customerFields,
			nil,
		)
		ResponseSuccess(c, ac.Input(q))
	case "products":
		data, err := product.List(c.Request.Context())
		if err != nil {
			ResponseError(c, err)
			return
		}
		ac := autocomplete.New(
			func() []model.Product { return data },
			productFields,
			nil,
		)
		ResponseSuccess(c, ac.Input(q))
	default:
		ResponseError(c, errno.ErrBadPayload)
	}
}

// เทียบทุกฟิลด์ของเรคอร์ดเหมือนหน้าจอเดิมที่สแกน Object.values
func customerFields(data model.Customer) []string {
	return []string{
		data.CustomerID, data.CustomerName, data.CustomerAddress,
		data.CustomerPhone, data.CustomerBirthday,
	}
}

func productFields(data model.Product) []string {
	return []string{data.ProductID, data.ProductName, data.ProductPrice, data.ImageUrl}
}
