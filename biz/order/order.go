package order

import (
	"context"
	"time"

	"order_console/dao/mq"
	"order_console/dao/mysql"
	"order_console/dao/redis"
	"order_console/errno"
	"order_console/model"
	"order_console/pkg/normalize"

	"go.uber.org/zap"
)

// ชั้น biz ถือ business logic ทั้งหมด
// biz -> dao

// List โหลดออร์เดอร์ทั้งชีตหลัก
func List(ctx context.Context) ([]model.Order, error) {
	return mysql.ListOrders(ctx, model.SheetOrders)
}

// SheetData โหลดออร์เดอร์จากชีตปิดงาน
func SheetData(ctx context.Context, sheetName string) ([]model.Order, error) {
	exists, err := mysql.SheetExists(ctx, sheetName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errno.ErrSheetNotFound
	}
	return mysql.ListOrders(ctx, sheetName)
}

// SheetNames รายชื่อชีตปิดงาน (client เติม "order" นำหน้าเอง ตามสัญญาเดิม)
func SheetNames(ctx context.Context) ([]string, error) {
	return mysql.ListSheetNames(ctx)
}

// GetByID ค้นออร์เดอร์หนึ่งตัวข้ามทุกชีต
func GetByID(ctx context.Context, orderID string) (model.Order, error) {
	return mysql.QueryOrder(ctx, orderID)
}

// Create สร้างออร์เดอร์ใหม่
// 1. จัดรูปแบบชื่อ/เบอร์ 2. คำนวณยอดรวมใหม่ 3. ออกเลขออร์เดอร์ใต้ lock รายวัน
// 4. บันทึก 5. ตั้ง delayed message เตือนถ้าลูกค้าไม่ยืนยันตามกำหนด
func Create(ctx context.Context, data *model.Order) error {
	applyNormalization(data)
	if data.Date == "" {
		data.Date = normalize.BEDateTime(time.Now())
	}
	if data.Status == "" {
		data.Status = model.StatusCreated
	}
	data.Bucket = model.SheetOrders

	if data.OrderID == "" {
		orderID, err := allocateOrderID(ctx)
		if err != nil {
			return err
		}
		data.OrderID = orderID
	}

	if err := mysql.CreateOrder(ctx, data); err != nil {
		zap.L().Error("mysql.CreateOrder failed",
			zap.String("orderID", data.OrderID), zap.Error(err))
		return errno.ErrUpdateFailed
	}

	// ตั้งเวลาเตือนแบบ best-effort ออร์เดอร์บันทึกแล้ว message ล่มไม่ต้อง rollback
	if err := mq.SendConfirmDeadline(ctx, data); err != nil {
		zap.L().Warn("confirm deadline message not scheduled",
			zap.String("orderID", data.OrderID), zap.Error(err))
	}
	return nil
}

// allocateOrderID ออกเลขออร์เดอร์ของวันนี้ใต้ lock ต่อ prefix วัน
// อ่านเลขสูงสุดหลังได้ lock เท่านั้น กันสองแอดมินได้เลขเดียวกัน
// นับเลขจากทุกชีต เลขของออร์เดอร์ที่ถูกปิดงานไปแล้ววันเดียวกันห้ามออกซ้ำ
func allocateOrderID(ctx context.Context) (string, error) {
	now := time.Now()
	prefix := DayPrefix(now)
	mutex := redis.NewMutex("order:seq:" + prefix)
	if err := mutex.LockContext(ctx); err != nil {
		zap.L().Error("acquire order id lock failed", zap.Error(err))
		return "", errno.ErrUpdateFailed
	}
	defer func() {
		if _, err := mutex.UnlockContext(ctx); err != nil {
			zap.L().Warn("release order id lock failed", zap.Error(err))
		}
	}()

	orders, err := mysql.OrdersByIDPrefix(ctx, prefix)
	if err != nil {
		return "", err
	}
	return GenerateID(orders, now), nil
}

// Update แก้ไขออร์เดอร์เดิมทั้งแถว
func Update(ctx context.Context, data *model.Order) error {
	applyNormalization(data)
	if err := mysql.UpdateOrder(ctx, data); err != nil {
		zap.L().Error("mysql.UpdateOrder failed",
			zap.String("orderID", data.OrderID), zap.Error(err))
		return err
	}
	return nil
}

// applyNormalization จัดรูปแบบฟิลด์ลูกค้าและคำนวณยอดรวมก่อนเก็บ
func applyNormalization(data *model.Order) {
	data.CustomerName = normalize.CustomerName(data.CustomerName)
	data.CustomerPhone = normalize.PhoneForSheet(data.CustomerPhone)
	data.TotalPrice = ComputeTotal(data.ItemPrices())
}

// ConfirmParam ข้อมูลที่ลูกค้ากรอกตอนยืนยันออร์เดอร์ผ่านลิงก์
type ConfirmParam struct {
	OrderID         string `json:"OrderID"`
	CustomerName    string `json:"CustomerName"`
	CustomerAddress string `json:"CustomerAddress"`
	CustomerPhone   string `json:"CustomerPhone"`
	SlipURL         string `json:"SlipURL"`
	Status          string `json:"Status"`
}

// ConfirmByCustomer ลูกค้ายืนยันออร์เดอร์และแนบสลิป
// ยืนยันได้เฉพาะออร์เดอร์ที่ยังอยู่สถานะสร้างออร์เดอร์ สถานะใหม่เป็นรอตรวจสอบเสมอ
func ConfirmByCustomer(ctx context.Context, param *ConfirmParam) error {
	if param.SlipURL == "" {
		return errno.ErrSlipRequired
	}

	existing, err := mysql.QueryOrder(ctx, param.OrderID)
	if err != nil {
		return err
	}
	if existing.Status != model.StatusCreated {
		return errno.ErrOrderConfirmed
	}

	fields := map[string]interface{}{
		"customer_name":    normalize.CustomerName(param.CustomerName),
		"customer_address": param.CustomerAddress,
		"customer_phone":   normalize.PhoneForSheet(param.CustomerPhone),
		"slip_url":         param.SlipURL,
		"status":           model.StatusPendingReview,
	}
	if err := mysql.UpdateOrderFields(ctx, param.OrderID, fields); err != nil {
		zap.L().Error("confirm order failed",
			zap.String("orderID", param.OrderID), zap.Error(err))
		return err
	}
	return nil
}

// Delete ลบออร์เดอร์ตามรายการ ID จากชีตที่ระบุ
func Delete(ctx context.Context, sheetName string, ids []string) error {
	exists, err := mysql.SheetExists(ctx, sheetName)
	if err != nil {
		return err
	}
	if !exists {
		return errno.ErrSheetNotFound
	}
	return mysql.DeleteOrders(ctx, sheetName, ids)
}

// MoveToSheet ปิดงาน ย้ายออร์เดอร์จากชีตหลักเข้าชีตปิดงานตามชื่อ
// ชื่อชีตที่ระบบจองไว้ใช้เป็นปลายทางไม่ได้
func MoveToSheet(ctx context.Context, ids []string, target string) error {
	if target == "" || model.IsReserved(target) {
		return errno.ErrBadPayload
	}
	if err := mysql.MoveOrdersToBucket(ctx, ids, target); err != nil {
		zap.L().Error("move orders to sheet failed",
			zap.String("target", target), zap.Int("count", len(ids)), zap.Error(err))
		return errno.ErrUpdateFailed
	}
	return nil
}
