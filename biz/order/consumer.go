package order

import (
	"context"
	"encoding/json"
	"errors"

	"order_console/config"
	"order_console/dao/mysql"
	"order_console/errno"
	"order_console/model"

	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"go.uber.org/zap"
)

// ConfirmTimeoutHandle callback รับ message ครบกำหนดยืนยันออร์เดอร์
// ตอนสร้างออร์เดอร์เราตั้ง delayed message ไว้ ครบเวลาแล้วกลับมาเช็คสถานะอีกรอบ
// ออร์เดอร์ที่ลูกค้ายังไม่ยืนยันจะถูก log เตือนให้แอดมินตามงาน
// สถานะไม่ถูกแก้ เพราะวงจรสถานะของระบบนี้เดินด้วยมือแอดมินเท่านั้น
func ConfirmTimeoutHandle(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
	for _, msg := range msgs {
		if msg.Topic != config.Conf.RocketMqConfig.Topic.ConfirmTimeout {
			zap.L().Info("skip message from unexpected topic", zap.String("topic", msg.Topic))
			continue
		}

		var data model.Order
		if err := json.Unmarshal(msg.Body, &data); err != nil {
			zap.L().Error("unmarshal confirm timeout message failed", zap.Error(err))
			return consumer.ConsumeRetryLater, err
		}

		current, err := mysql.QueryOrder(context.Background(), data.OrderID)
		if errors.Is(err, errno.ErrOrderNotFound) {
			// ออร์เดอร์ถูกลบไปก่อนครบกำหนด ไม่มีอะไรต้องทำ
			zap.L().Info("order deleted before confirm deadline",
				zap.String("orderID", data.OrderID))
			continue
		}
		if err != nil {
			zap.L().Error("query order for confirm deadline failed",
				zap.String("orderID", data.OrderID), zap.Error(err))
			return consumer.ConsumeRetryLater, err
		}

		switch current.Status {
		case model.StatusCreated:
			zap.L().Warn("order unconfirmed past deadline",
				zap.String("orderID", current.OrderID),
				zap.String("customer", current.CustomerName))
		case model.StatusPendingReview, model.StatusReadyToShip, model.StatusDone:
			zap.L().Info("order already confirmed, ignoring deadline message",
				zap.String("orderID", current.OrderID),
				zap.String("status", current.Status))
		default:
			// ออร์เดอร์ถูกย้ายเข้าชีตปิดงานแล้ว สถานะอะไรก็ไม่ต้องเตือน
			zap.L().Info("order in archive sheet, ignoring deadline message",
				zap.String("orderID", current.OrderID),
				zap.String("status", current.Status))
		}
	}

	return consumer.ConsumeSuccess, nil
}
