// Package web ฝั่งแสดงผลของคอนโซล แม่แบบ HTML ฝังมากับ binary
// ฟังก์ชัน render แถวตารางเป็น pure function รับคอลเลกชัน + สถานะตัวกรอง
// คืน markup ของแถว (หรือแถว "ไม่พบข้อมูล" เมื่อผลกรองว่าง)
package web

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"strings"

	"order_console/biz/customer"
	"order_console/biz/order"
	"order_console/biz/product"
	"order_console/model"
	"order_console/pkg/normalize"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"money": Money,
	"phone": normalize.PhoneForDisplay,
	"rowClass": func(i int) string {
		if i%2 == 0 {
			return "table-row-light"
		}
		return "table-row-dark"
	},
}).ParseFS(templatesFS, "templates/*.tmpl"))

// Money จัดตัวเลขเงินแบบมี comma คั่นหลักพัน ค่าที่ไม่ใช่ตัวเลขคืนตามเดิม
func Money(s string) string {
	if s == "" {
		return "0"
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}

	str := d.String()
	neg := strings.HasPrefix(str, "-")
	if neg {
		str = str[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(str, ".")

	var b strings.Builder
	for i, ch := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(ch)
	}
	out := b.String()
	if hasFrac {
		out += "." + fracPart
	}
	if neg {
		out = "-" + out
	}
	return out
}

func renderRows(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// OrderRows แถวตารางออร์เดอร์หลังกรองด้วยคำค้นและสถานะ
func OrderRows(orders []model.Order, search, status string) (template.HTML, error) {
	return renderRows("order_rows", order.Filter(orders, search, status))
}

// CustomerRows แถวตารางลูกค้าหลังกรองด้วยคำค้น
func CustomerRows(customers []model.Customer, search string) (template.HTML, error) {
	return renderRows("customer_rows", customer.Filter(customers, search))
}

// ProductRows แถวตารางสินค้าหลังกรองด้วยคำค้น
func ProductRows(products []model.Product, search string) (template.HTML, error) {
	return renderRows("product_rows", product.Filter(products, search))
}

// PrintRows แถวตารางเลือกพิมพ์หลังกรองด้วยชนิดข้อมูลและสถานะ
func PrintRows(orders []model.Order, dataType, status string) (template.HTML, error) {
	return renderRows("print_rows", order.FilterForPrint(orders, dataType, status))
}

// AdminPage ข้อมูลประกอบหน้าคอนโซลแอดมิน
type AdminPage struct {
	Title          string
	OrderSearch    string
	OrderStatus    string
	CustomerSearch string
	ProductSearch  string
	PrintSheet     string
	PrintType      string
	PrintStatus    string
	SheetNames     []string
	Statuses       []string
	OrderRows      template.HTML
	CustomerRows   template.HTML
	ProductRows    template.HTML
	PrintRows      template.HTML
}

func RenderAdminPage(w io.Writer, page *AdminPage) error {
	return tmpl.ExecuteTemplate(w, "admin", page)
}

// ItemView รายการสินค้าหนึ่งบรรทัดบนหน้ายืนยันของลูกค้า
type ItemView struct {
	Name  string
	Price string
}

// CustomerPage สถานะหน้ายืนยันออร์เดอร์ฝั่งลูกค้า
// แสดงได้สี่แบบ ไม่พบออร์เดอร์ / ยืนยันไปแล้ว / ฟอร์มยืนยัน / ส่งสำเร็จ
type CustomerPage struct {
	OrderID   string
	NotFound  bool
	Confirmed bool
	Submitted bool
	Status    string
	Items     []ItemView
	Total     string
	Error     string
}

func RenderCustomerPage(w io.Writer, page *CustomerPage) error {
	return tmpl.ExecuteTemplate(w, "customer", page)
}
