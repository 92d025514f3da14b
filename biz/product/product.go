package product

import (
	"context"
	"strconv"
	"strings"

	"order_console/dao/mysql"
	"order_console/errno"
	"order_console/model"
	"order_console/third_party/snowflake"

	"go.uber.org/zap"
)

// List โหลดสินค้าทั้งชีตสินค้า
func List(ctx context.Context) ([]model.Product, error) {
	return mysql.ListProducts(ctx)
}

// Create เพิ่มสินค้าใหม่ ออก ProductID ด้วย snowflake เมื่อไม่ได้ส่งมา
func Create(ctx context.Context, data *model.Product) error {
	if data.ProductID == "" {
		data.ProductID = strconv.FormatInt(snowflake.GenID(), 10)
	}
	if err := mysql.CreateProduct(ctx, data); err != nil {
		zap.L().Error("mysql.CreateProduct failed",
			zap.String("productID", data.ProductID), zap.Error(err))
		return errno.ErrUpdateFailed
	}
	return nil
}

// Update แก้ไขสินค้าเดิม
func Update(ctx context.Context, data *model.Product) error {
	if err := mysql.UpdateProduct(ctx, data); err != nil {
		zap.L().Error("mysql.UpdateProduct failed",
			zap.String("productID", data.ProductID), zap.Error(err))
		return err
	}
	return nil
}

// Delete ลบสินค้าตามรายการ ID
func Delete(ctx context.Context, ids []string) error {
	return mysql.DeleteProducts(ctx, ids)
}

// Filter กรองสินค้าด้วยคำค้นตัวเดียว เทียบกับชื่อ ราคา และ ID
func Filter(products []model.Product, search string) []model.Product {
	search = strings.ToLower(search)

	filtered := make([]model.Product, 0, len(products))
	for _, p := range products {
		if search == "" ||
			strings.Contains(strings.ToLower(p.ProductName), search) ||
			strings.Contains(p.ProductPrice, search) ||
			strings.Contains(strings.ToLower(p.ProductID), search) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}
