package order

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"order_console/model"
)

// เลขออร์เดอร์รูปแบบ YYMMDD### ปีเป็นพุทธศักราชสองหลักท้าย
// รันเลขท้าย 3 หลักแยกตามวัน วันใหม่เริ่มนับ 001 ใหม่

// DayPrefix คืน prefix ของวันตามเวลาที่ให้ เช่น 25 ธ.ค. 2569 → "691225"
func DayPrefix(now time.Time) string {
	beYear := now.Year() + 543
	return fmt.Sprintf("%02d%02d%02d", beYear%100, int(now.Month()), now.Day())
}

// GenerateID ออกเลขออร์เดอร์ใหม่จากคอลเลกชันปัจจุบัน
// หาเลขท้ายสูงสุดของออร์เดอร์วันนี้แล้วบวกหนึ่ง ไม่มีออร์เดอร์วันนี้เริ่มที่ 001
// เลขที่ parse ไม่ได้นับเป็นศูนย์
func GenerateID(orders []model.Order, now time.Time) string {
	prefix := DayPrefix(now)

	maxSuffix := 0
	for _, o := range orders {
		if o.OrderID == "" || !strings.HasPrefix(o.OrderID, prefix) {
			continue
		}
		if len(o.OrderID) < 3 {
			continue
		}
		suffix, err := strconv.Atoi(o.OrderID[len(o.OrderID)-3:])
		if err != nil {
			continue
		}
		if suffix > maxSuffix {
			maxSuffix = suffix
		}
	}

	return fmt.Sprintf("%s%03d", prefix, maxSuffix+1)
}
