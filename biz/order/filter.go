package order

import (
	"strings"

	"order_console/model"
)

// FilterAll ค่าตัวกรองที่หมายถึงไม่กรอง
const FilterAll = "all"

// PrintTypeOrderOnly ตัวกรองตารางพิมพ์ เอาเฉพาะแถวที่เป็นออร์เดอร์จริง
const PrintTypeOrderOnly = "orderOnly"

// Filter กรองออร์เดอร์ตามคำค้นและสถานะ คำนวณใหม่ทุกครั้งจากคอลเลกชันเต็ม
// คำค้นเทียบแบบ substring ไม่สนตัวพิมพ์ กับ OrderID ชื่อลูกค้า และเบอร์โทร
// คำค้นว่าง + สถานะ all (หรือว่าง) คืนคอลเลกชันเดิมครบทุกแถวตามลำดับเดิม
func Filter(orders []model.Order, search, status string) []model.Order {
	search = strings.ToLower(search)

	filtered := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		matchesSearch := search == "" ||
			strings.Contains(strings.ToLower(o.OrderID), search) ||
			strings.Contains(strings.ToLower(o.CustomerName), search) ||
			strings.Contains(o.CustomerPhone, search)

		matchesStatus := status == FilterAll || status == "" || o.Status == status

		if matchesSearch && matchesStatus {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// FilterForPrint กรองแถวตารางพิมพ์ตามชนิดข้อมูลและสถานะ ค่าว่างถือเป็น all
func FilterForPrint(orders []model.Order, dataType, status string) []model.Order {
	filtered := make([]model.Order, 0, len(orders))
	for _, o := range orders {
		matchesType := dataType == FilterAll || dataType == "" ||
			(dataType == PrintTypeOrderOnly && o.OrderID != "")
		matchesStatus := status == FilterAll || status == "" || o.Status == status

		if matchesType && matchesStatus {
			filtered = append(filtered, o)
		}
	}
	return filtered
}
