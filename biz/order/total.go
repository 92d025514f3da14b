package order

import (
	"github.com/shopspring/decimal"
)

// ComputeTotal รวมราคาทุกช่องเป็นยอดรวม
// ช่องที่ parse เป็นตัวเลขไม่ได้ถูกข้าม ยอดรวมเป็นศูนย์หรือติดลบคืนค่าว่าง
// TotalPrice เป็นค่าคำนวณเสมอ ห้ามรับจากผู้ใช้ตรง ๆ
func ComputeTotal(prices []string) string {
	total := decimal.Zero
	for _, p := range prices {
		d, err := decimal.NewFromString(p)
		if err != nil {
			continue
		}
		total = total.Add(d)
	}
	if total.Sign() <= 0 {
		return ""
	}
	return total.String()
}
