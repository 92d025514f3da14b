package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"order_console/biz/order"
	"order_console/config"
	"order_console/dao/mq"
	"order_console/dao/mysql"
	"order_console/dao/redis"
	"order_console/logger"
	"order_console/registry"
	"order_console/router"
	"order_console/third_party/snowflake"

	"go.uber.org/zap"
)

func main() {
	var cfn string
	// 0. รับ path ไฟล์คอนฟิกจาก command line
	flag.StringVar(&cfn, "conf", "./conf/config.yaml", "ระบุ path ไฟล์คอนฟิก")
	flag.Parse()

	// 1. โหลดคอนฟิก
	err := config.Init(cfn)
	if err != nil {
		panic(err) // โหลดคอนฟิกไม่ได้ตอนบูต ออกเลย
	}
	// 2. ตั้งค่า logger
	err = logger.Init(config.Conf.LogConfig, config.Conf.Mode)
	if err != nil {
		panic(err)
	}
	// 3. เชื่อมต่อ MySQL
	err = mysql.Init(config.Conf.MySQLConfig)
	if err != nil {
		panic(err)
	}
	// 4. เชื่อมต่อ Redis (ใช้ lock ตอนออกเลขออร์เดอร์)
	err = redis.Init(config.Conf.RedisConfig)
	if err != nil {
		panic(err)
	}
	// 5. เตรียม RocketMQ producer + consumer เตือนออร์เดอร์ค้างยืนยัน
	err = mq.Init()
	if err != nil {
		panic(err)
	}
	err = mq.StartConsumer(order.ConfirmTimeoutHandle)
	if err != nil {
		panic(err)
	}
	// 6. ตั้งค่า snowflake
	err = snowflake.Init(config.Conf.StartTime, config.Conf.MachineID)
	if err != nil {
		panic(err)
	}
	// 7. เชื่อมต่อ consul
	err = registry.Init(config.Conf.ConsulConfig.Addr)
	if err != nil {
		panic(err)
	}

	// งานตามรอบ กวาดออร์เดอร์ค้างยืนยัน
	scanCtx, stopScanner := context.WithCancel(context.Background())
	go order.StartUnconfirmedScanner(scanCtx)

	// เริ่ม HTTP server
	r := router.SetupRouter(config.Conf.Mode)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Conf.Port),
		Handler: r,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	// ลงทะเบียน service กับ consul
	err = registry.Reg.RegisterService(config.Conf.Name, config.Conf.IP, config.Conf.Port, nil)
	if err != nil {
		zap.L().Error("register service failed", zap.Error(err))
	}

	zap.L().Info("service start...",
		zap.String("name", config.Conf.Name),
		zap.Int("port", config.Conf.Port))

	// รอสัญญาณปิดโปรแกรม
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	zap.L().Info("shutting down...")

	// ถอนทะเบียนออกจาก consul ก่อน ปิดรับงานใหม่
	serviceID := fmt.Sprintf("%s-%s-%d", config.Conf.Name, config.Conf.IP, config.Conf.Port)
	if err := registry.Reg.Deregister(serviceID); err != nil {
		zap.L().Error("deregister service failed", zap.Error(err))
	}

	stopScanner()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("server shutdown failed", zap.Error(err))
	}

	if err := mq.Exit(); err != nil {
		zap.L().Error("shutdown rocketmq failed", zap.Error(err))
	}
	if err := redis.Close(); err != nil {
		zap.L().Error("close redis failed", zap.Error(err))
	}
}
