package order

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"order_console/model"
)

func TestDayPrefix(t *testing.T) {
	// 25 ธ.ค. 2026 = พ.ศ. 2569
	now := time.Date(2026, 12, 25, 10, 30, 0, 0, time.Local)
	assert.Equal(t, "691225", DayPrefix(now))

	// เลขเดือน/วันหลักเดียวต้องเติมศูนย์
	now = time.Date(2026, 1, 5, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "690105", DayPrefix(now))
}

func TestGenerateIDEmptyDay(t *testing.T) {
	now := time.Date(2026, 12, 25, 10, 0, 0, 0, time.Local)

	// ไม่มีออร์เดอร์เลย เริ่มที่ 001
	assert.Equal(t, "691225001", GenerateID(nil, now))

	// มีแต่ออร์เดอร์ของวันอื่น ก็ยังเริ่มที่ 001
	orders := []model.Order{
		{OrderID: "691224007"},
		{OrderID: "691101099"},
	}
	assert.Equal(t, "691225001", GenerateID(orders, now))
}

func TestGenerateIDMaxPlusOne(t *testing.T) {
	now := time.Date(2026, 12, 25, 10, 0, 0, 0, time.Local)
	orders := []model.Order{
		{OrderID: "691225001"},
		{OrderID: "691225012"},
		{OrderID: "691225005"},
		{OrderID: "691224099"},
	}
	assert.Equal(t, "691225013", GenerateID(orders, now))
}

func TestGenerateIDCountsArchivedOrders(t *testing.T) {
	now := time.Date(2026, 12, 25, 10, 0, 0, 0, time.Local)

	// ออร์เดอร์ของวันนี้ที่ถูกย้ายเข้าชีตปิดงานไปแล้วยังถือเลขอยู่
	// ชีตหลักว่างก็ห้ามออกเลขเดิมซ้ำ เลขออร์เดอร์ unique ข้ามชีต
	orders := []model.Order{
		{OrderID: "691225001", Bucket: "ปิดงานธันวา"},
		{OrderID: "691225002", Bucket: "ปิดงานธันวา"},
	}
	assert.Equal(t, "691225003", GenerateID(orders, now))
}

func TestGenerateIDSkipsUnparseable(t *testing.T) {
	now := time.Date(2026, 12, 25, 10, 0, 0, 0, time.Local)
	orders := []model.Order{
		{OrderID: "691225xyz"},
		{OrderID: ""},
		{OrderID: "691225003"},
	}
	assert.Equal(t, "691225004", GenerateID(orders, now))
}
