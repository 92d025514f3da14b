package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Conf เก็บค่าคอนฟิกทั้งหมดของแอป อ่านครั้งเดียวตอนบูต
var Conf = new(AppConfig)

type AppConfig struct {
	Name      string `mapstructure:"name"`
	Mode      string `mapstructure:"mode"`
	Version   string `mapstructure:"version"`
	IP        string `mapstructure:"ip"`
	Port      int    `mapstructure:"port"`
	BaseURL   string `mapstructure:"base_url"`
	StartTime string `mapstructure:"start_time"`
	MachineID int64  `mapstructure:"machine_id"`

	*LogConfig      `mapstructure:"log"`
	*MySQLConfig    `mapstructure:"mysql"`
	*RedisConfig    `mapstructure:"redis"`
	*RocketMqConfig `mapstructure:"rocketmq"`
	*ConsulConfig   `mapstructure:"consul"`
	*UploadConfig   `mapstructure:"upload"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxAge     int    `mapstructure:"max_age"`
	MaxBackups int    `mapstructure:"max_backups"`
}

type MySQLConfig struct {
	Host         string `mapstructure:"host"`
	User         string `mapstructure:"user"`
	Password     string `mapstructure:"password"`
	DB           string `mapstructure:"dbname"`
	Port         int    `mapstructure:"port"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Password string `mapstructure:"password"`
	Port     int    `mapstructure:"port"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type RocketMqConfig struct {
	Addr    string       `mapstructure:"addr"`
	GroupId string       `mapstructure:"group_id"`
	Topic   *TopicConfig `mapstructure:"topic"`
	// DelayLevel ระดับดีเลย์ของ RocketMQ (ระดับ 16 = 30 นาที)
	DelayLevel int `mapstructure:"delay_level"`
}

type TopicConfig struct {
	ConfirmTimeout string `mapstructure:"confirm_timeout"`
}

type ConsulConfig struct {
	Addr string `mapstructure:"addr"`
}

type UploadConfig struct {
	// Dir โฟลเดอร์หลักสำหรับเก็บไฟล์ที่อัปโหลด
	Dir string `mapstructure:"dir"`
	// SlipFolderID / ProductFolderID คือ folderId ที่ฝั่ง client ส่งมา
	// เทียบเท่าโฟลเดอร์ปลายทางบน Drive ของระบบเดิม
	SlipFolderID    string `mapstructure:"slip_folder_id"`
	ProductFolderID string `mapstructure:"product_folder_id"`
}

// Init อ่านไฟล์คอนฟิกตาม path ที่ระบุ และ watch การแก้ไขไฟล์
func Init(filePath string) (err error) {
	viper.SetConfigFile(filePath)
	err = viper.ReadInConfig()
	if err != nil {
		// อ่านไฟล์คอนฟิกไม่ได้ ให้ตายตั้งแต่ตอนบูต
		return fmt.Errorf("viper.ReadInConfig failed: %w", err)
	}

	if err := viper.Unmarshal(Conf); err != nil {
		return fmt.Errorf("viper.Unmarshal failed: %w", err)
	}

	viper.WatchConfig()
	viper.OnConfigChange(func(in fsnotify.Event) {
		// ไฟล์คอนฟิกถูกแก้ไข โหลดค่าใหม่ทับตัวเดิม
		fmt.Println("config file changed:", in.Name)
		if err := viper.Unmarshal(Conf); err != nil {
			fmt.Printf("viper.Unmarshal failed after config change: %v\n", err)
		}
	})
	return nil
}
