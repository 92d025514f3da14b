package model

import "time"

// BaseModel ฟิลด์พื้นฐานที่ฝังในทุกตาราง
type BaseModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"-"`
	CreateTime time.Time `gorm:"column:create_time;autoCreateTime" json:"-"`
	UpdateTime time.Time `gorm:"column:update_time;autoUpdateTime" json:"-"`
	IsDel      int8      `gorm:"column:is_del;default:0" json:"-"`
}
