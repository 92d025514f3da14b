package mysql

import (
	"context"
	"errors"
	"time"

	"order_console/errno"
	"order_console/model"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ListOrders โหลดออร์เดอร์ทั้งชีตตามชื่อ bucket ("order" = ชีตหลัก)
// โหลดยกชุดเสมอ ไม่ทำ pagination ตามโมเดลข้อมูลของระบบ
func ListOrders(ctx context.Context, bucket string) ([]model.Order, error) {
	var data []model.Order
	err := db.WithContext(ctx).
		Model(&model.Order{}).
		Where("bucket = ?", bucket).
		Order("id").
		Find(&data).Error
	if err != nil {
		return nil, errno.ErrQueryFailed
	}
	return data, nil
}

// QueryOrder ค้นออร์เดอร์ตาม OrderID ข้ามทุกชีต
func QueryOrder(ctx context.Context, orderID string) (model.Order, error) {
	var data model.Order
	err := db.WithContext(ctx).
		Model(&model.Order{}).
		Where("order_id = ?", orderID).
		First(&data).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return data, errno.ErrOrderNotFound
	}
	if err != nil {
		return data, errno.ErrQueryFailed
	}
	return data, nil
}

func CreateOrder(ctx context.Context, data *model.Order) error {
	return db.WithContext(ctx).
		Model(&model.Order{}).
		Create(data).Error
}

// orderEditableColumns คอลัมน์ที่การแก้ไขจากหน้าจอเขียนทับได้
// ระบุตรง ๆ เพื่อบังคับเขียนค่าว่างทับช่องรายการที่ถูกลบออก
var orderEditableColumns = []string{
	"order_date", "customer_name", "customer_address", "customer_phone",
	"item1_name", "item1_price", "item2_name", "item2_price",
	"item3_name", "item3_price", "item4_name", "item4_price",
	"item5_name", "item5_price",
	"total_price", "status", "slip_url",
}

// UpdateOrder เขียนทับข้อมูลออร์เดอร์ทั้งแถวตาม OrderID
func UpdateOrder(ctx context.Context, data *model.Order) error {
	// เช็คว่ามีออร์เดอร์นี้ก่อน จะได้แยก not found ออกจาก update ไม่เปลี่ยนค่า
	if _, err := QueryOrder(ctx, data.OrderID); err != nil {
		return err
	}
	err := db.WithContext(ctx).
		Model(&model.Order{}).
		Where("order_id = ?", data.OrderID).
		Select(orderEditableColumns).
		Updates(data).Error
	if err != nil {
		return errno.ErrUpdateFailed
	}
	return nil
}

// UpdateOrderFields อัปเดตเฉพาะบางคอลัมน์ ใช้ตอนลูกค้ายืนยันออร์เดอร์
func UpdateOrderFields(ctx context.Context, orderID string, fields map[string]interface{}) error {
	result := db.WithContext(ctx).
		Model(&model.Order{}).
		Where("order_id = ?", orderID).
		Updates(fields)

	if result.Error != nil {
		zap.L().Error("mysql.UpdateOrderFields failed",
			zap.String("orderID", orderID), zap.Error(result.Error))
		return errno.ErrUpdateFailed
	}
	if result.RowsAffected == 0 {
		return errno.ErrOrderNotFound
	}
	return nil
}

// DeleteOrders ลบออร์เดอร์ตามรายการ ID ในชีตที่ระบุ
func DeleteOrders(ctx context.Context, bucket string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	err := db.WithContext(ctx).
		Where("bucket = ? AND order_id IN ?", bucket, ids).
		Delete(&model.Order{}).Error
	if err != nil {
		return errno.ErrUpdateFailed
	}
	return nil
}

// OrdersByIDPrefix ออร์เดอร์ที่เลขขึ้นต้นด้วย prefix จากทุกชีต
// ใช้ตอนออกเลขใหม่ เลขออร์เดอร์ unique ข้ามชีต ต้องนับเลขในชีตปิดงานด้วย
func OrdersByIDPrefix(ctx context.Context, prefix string) ([]model.Order, error) {
	var data []model.Order
	err := db.WithContext(ctx).
		Model(&model.Order{}).
		Where("order_id LIKE ?", prefix+"%").
		Find(&data).Error
	if err != nil {
		return nil, errno.ErrQueryFailed
	}
	return data, nil
}

// MoveOrdersToBucket ย้ายออร์เดอร์จากชีตหลักเข้าชีตปิดงาน
// ลงทะเบียนชื่อชีตปลายทางในทรานแซกชันเดียวกัน ย้ายสำเร็จแล้วชื่อต้องติดทะเบียนเสมอ
func MoveOrdersToBucket(ctx context.Context, ids []string, target string) error {
	if len(ids) == 0 {
		return nil
	}
	return db.WithContext(ctx).
		Transaction(func(tx *gorm.DB) error {
			sheet := model.SheetName{Name: target}
			if err := tx.Where("name = ?", target).FirstOrCreate(&sheet).Error; err != nil {
				return err
			}
			return tx.Model(&model.Order{}).
				Where("order_id IN ?", ids).
				Update("bucket", target).Error
		})
}

// OldUnconfirmedOrders ออร์เดอร์ในชีตหลักที่ยังไม่ถูกยืนยันและสร้างมาก่อนเวลาที่กำหนด
func OldUnconfirmedOrders(ctx context.Context, before time.Time) ([]model.Order, error) {
	var data []model.Order
	err := db.WithContext(ctx).
		Model(&model.Order{}).
		Where("bucket = ? AND status = ? AND create_time < ?", model.SheetOrders, model.StatusCreated, before).
		Find(&data).Error
	if err != nil {
		return nil, errno.ErrQueryFailed
	}
	return data, nil
}
