package mysql

import (
	"context"

	"order_console/errno"
	"order_console/model"
)

// ListSheetNames รายชื่อชีตปิดงานทั้งหมดที่ลงทะเบียนไว้ (ไม่รวมชีตหลัก)
func ListSheetNames(ctx context.Context) ([]string, error) {
	var names []string
	err := db.WithContext(ctx).
		Model(&model.SheetName{}).
		Order("id").
		Pluck("name", &names).Error
	if err != nil {
		return nil, errno.ErrQueryFailed
	}
	return names, nil
}

// SheetExists เช็คว่าชื่อชีตนี้รู้จักหรือไม่ (ชีตหลักถือว่ามีเสมอ)
func SheetExists(ctx context.Context, name string) (bool, error) {
	if name == model.SheetOrders {
		return true, nil
	}
	var count int64
	err := db.WithContext(ctx).
		Model(&model.SheetName{}).
		Where("name = ?", name).
		Count(&count).Error
	if err != nil {
		return false, errno.ErrQueryFailed
	}
	return count > 0, nil
}
