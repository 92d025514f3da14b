package order

import (
	"context"
	"time"

	"order_console/dao/mysql"

	"go.uber.org/zap"
)

// StartUnconfirmedScanner งานตามรอบ กวาดหาออร์เดอร์ค้างยืนยันข้ามวัน
// เป็นตาข่ายชั้นสองของ delayed message (message หายหรือ MQ ล่มก็ยังเจองานค้าง)
func StartUnconfirmedScanner(ctx context.Context) {
	zap.L().Info("starting unconfirmed order scanner")

	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("unconfirmed order scanner stopped")
			return
		case <-ticker.C:
			scanUnconfirmedOrders()
		}
	}
}

// scanUnconfirmedOrders หาออร์เดอร์ในชีตหลักที่ค้างสถานะสร้างออร์เดอร์เกินหนึ่งวัน
// คอลเลกชันโตแค่หนึ่งหน้าชีต กวาดรอบเดียวจบ ไม่ต้องแบ่ง shard
func scanUnconfirmedOrders() {
	ctx := context.Background()

	cutoff := time.Now().Add(-24 * time.Hour)
	stale, err := mysql.OldUnconfirmedOrders(ctx, cutoff)
	if err != nil {
		zap.L().Error("scan unconfirmed orders failed", zap.Error(err))
		return
	}

	if len(stale) == 0 {
		return
	}

	zap.L().Warn("found stale unconfirmed orders", zap.Int("count", len(stale)))
	for _, o := range stale {
		zap.L().Warn("order awaiting customer confirmation",
			zap.String("orderID", o.OrderID),
			zap.String("customer", o.CustomerName),
			zap.String("date", o.Date))
	}
}
