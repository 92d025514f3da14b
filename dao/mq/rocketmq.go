package mq

import (
	"context"
	"encoding/json"

	"order_console/config"
	"order_console/model"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"go.uber.org/zap"
)

var (
	Producer     rocketmq.Producer
	pushConsumer rocketmq.PushConsumer
)

// Init เตรียม producer ของ RocketMQ
func Init() (err error) {
	Producer, err = rocketmq.NewProducer(
		producer.WithNsResolver(primitive.NewPassthroughResolver([]string{config.Conf.RocketMqConfig.Addr})),
		producer.WithRetry(2),
		producer.WithGroupName(config.Conf.RocketMqConfig.GroupId),
	)
	if err != nil {
		zap.L().Error("rocketmq.NewProducer failed", zap.Error(err))
		return err
	}
	err = Producer.Start()
	if err != nil {
		zap.L().Error("start producer failed", zap.Error(err))
		return
	}
	return nil
}

// StartConsumer สมัครรับ message เตือนออร์เดอร์ค้างยืนยัน
func StartConsumer(cb func(context.Context, ...*primitive.MessageExt) (consumer.ConsumeResult, error)) (err error) {
	pushConsumer, err = rocketmq.NewPushConsumer(
		consumer.WithNsResolver(primitive.NewPassthroughResolver([]string{config.Conf.RocketMqConfig.Addr})),
		consumer.WithGroupName(config.Conf.RocketMqConfig.GroupId),
	)
	if err != nil {
		zap.L().Error("rocketmq.NewPushConsumer failed", zap.Error(err))
		return err
	}
	err = pushConsumer.Subscribe(config.Conf.RocketMqConfig.Topic.ConfirmTimeout, consumer.MessageSelector{}, cb)
	if err != nil {
		zap.L().Error("subscribe confirm timeout topic failed", zap.Error(err))
		return err
	}
	return pushConsumer.Start()
}

// SendConfirmDeadline ส่ง delayed message หลังสร้างออร์เดอร์
// ครบกำหนดแล้ว consumer จะกลับมาเช็คว่าลูกค้ายืนยันหรือยัง
func SendConfirmDeadline(ctx context.Context, data *model.Order) error {
	body, err := json.Marshal(data)
	if err != nil {
		return err
	}
	msg := primitive.NewMessage(config.Conf.RocketMqConfig.Topic.ConfirmTimeout, body)
	msg.WithDelayTimeLevel(config.Conf.RocketMqConfig.DelayLevel)

	_, err = Producer.SendSync(ctx, msg)
	if err != nil {
		zap.L().Error("send confirm deadline message failed",
			zap.String("orderID", data.OrderID), zap.Error(err))
	}
	return err
}

// Exit ปิด producer / consumer ตอน shutdown
func Exit() error {
	if pushConsumer != nil {
		if err := pushConsumer.Shutdown(); err != nil {
			zap.L().Error("shutdown consumer failed", zap.Error(err))
		}
	}
	err := Producer.Shutdown()
	if err != nil {
		zap.L().Error("shutdown producer failed", zap.Error(err))
	}
	return err
}
