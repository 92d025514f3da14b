package customer

import (
	"context"
	"strconv"
	"strings"

	"order_console/dao/mysql"
	"order_console/errno"
	"order_console/model"
	"order_console/pkg/normalize"
	"order_console/third_party/snowflake"

	"go.uber.org/zap"
)

// List โหลดลูกค้าทั้งชีตรายชื่อ
func List(ctx context.Context) ([]model.Customer, error) {
	return mysql.ListCustomers(ctx)
}

// Create เพิ่มลูกค้าใหม่ ออก CustomerID ด้วย snowflake เมื่อไม่ได้ส่งมา
func Create(ctx context.Context, data *model.Customer) error {
	applyNormalization(data)
	if data.CustomerID == "" {
		data.CustomerID = strconv.FormatInt(snowflake.GenID(), 10)
	}
	if err := mysql.CreateCustomer(ctx, data); err != nil {
		zap.L().Error("mysql.CreateCustomer failed",
			zap.String("customerID", data.CustomerID), zap.Error(err))
		return errno.ErrUpdateFailed
	}
	return nil
}

// Update แก้ไขลูกค้าเดิม
func Update(ctx context.Context, data *model.Customer) error {
	applyNormalization(data)
	if err := mysql.UpdateCustomer(ctx, data); err != nil {
		zap.L().Error("mysql.UpdateCustomer failed",
			zap.String("customerID", data.CustomerID), zap.Error(err))
		return err
	}
	return nil
}

// Delete ลบลูกค้าตามรายการ ID
func Delete(ctx context.Context, ids []string) error {
	return mysql.DeleteCustomers(ctx, ids)
}

func applyNormalization(data *model.Customer) {
	data.CustomerName = normalize.CustomerName(data.CustomerName)
	data.CustomerPhone = normalize.PhoneForSheet(data.CustomerPhone)
}

// Filter กรองลูกค้าด้วยคำค้นตัวเดียว เทียบกับชื่อ เบอร์ และ ID
func Filter(customers []model.Customer, search string) []model.Customer {
	search = strings.ToLower(search)

	filtered := make([]model.Customer, 0, len(customers))
	for _, c := range customers {
		if search == "" ||
			strings.Contains(strings.ToLower(c.CustomerName), search) ||
			strings.Contains(c.CustomerPhone, search) ||
			strings.Contains(strings.ToLower(c.CustomerID), search) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
