// Package normalize รวมฟังก์ชันจัดรูปแบบข้อมูลก่อนเก็บลงชีตและก่อนแสดงผล
// ทุกฟังก์ชันเป็น pure function ค่าว่างเข้า ค่าว่างออก ไม่มีทาง error
package normalize

import (
	"fmt"
	"strings"
	"time"
)

// Honorific คำนำหน้าชื่อลูกค้า เก็บติดชื่อเสมอหนึ่งครั้ง
const Honorific = "คุณ"

// PhoneQuote เครื่องหมายกันชีตแปลงเบอร์โทรเป็นตัวเลขแล้วตัดศูนย์นำหน้าทิ้ง
const PhoneQuote = "'"

// PhoneForSheet จัดเบอร์โทรให้พร้อมเก็บ
// ถ้าขึ้นต้นด้วย ' อยู่แล้วคืนเดิม ถ้าขึ้นต้นด้วย 0 เติม ' ให้ นอกนั้นคืนตามเดิม
func PhoneForSheet(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}
	if strings.HasPrefix(phone, PhoneQuote) {
		return phone
	}
	if strings.HasPrefix(phone, "0") {
		return PhoneQuote + phone
	}
	return phone
}

// PhoneForDisplay ตัด ' นำหน้าออกก่อนแสดงให้ผู้ใช้เห็น
func PhoneForDisplay(phone string) string {
	return strings.TrimPrefix(phone, PhoneQuote)
}

// CustomerName เติมคำนำหน้า "คุณ" ให้ชื่อลูกค้า ถ้ามีอยู่แล้วไม่เติมซ้ำ
func CustomerName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.HasPrefix(name, Honorific) {
		return name
	}
	return Honorific + name
}

// BEDateTime จัดวันเวลาเป็นรูปแบบแสดงผล DD-MM-YYYY : HH:MM ปีพุทธศักราช
func BEDateTime(t time.Time) string {
	return fmt.Sprintf("%02d-%02d-%d : %02d:%02d",
		t.Day(), int(t.Month()), t.Year()+543, t.Hour(), t.Minute())
}
