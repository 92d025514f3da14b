package redis

import (
	"context"
	"fmt"
	"time"

	"order_console/config"

	"github.com/go-redis/redis/v8"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v8"
)

var (
	client *redis.Client
	rs     *redsync.Redsync
)

// Init เชื่อมต่อ redis และเตรียม redsync สำหรับ distributed lock
func Init(cfg *config.RedisConfig) (err error) {
	client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err = client.Ping(ctx).Err(); err != nil {
		return err
	}

	rs = redsync.New(goredis.NewPool(client))
	return nil
}

// NewMutex สร้าง lock ตามชื่อ ใช้กันการออกเลขออร์เดอร์วันเดียวกันชนกัน
// สองแอดมินกดสร้างพร้อมกันจะต่อคิวกันที่ lock นี้
func NewMutex(name string) *redsync.Mutex {
	return rs.NewMutex(name,
		redsync.WithExpiry(8*time.Second),
		redsync.WithTries(16),
	)
}

func Close() error {
	return client.Close()
}
