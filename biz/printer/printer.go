// Package printer สร้างเอกสารฉลากจัดส่งเป็น HTML พร้อมพิมพ์
// หนึ่งออร์เดอร์ = หนึ่งหน้า (page-break ต่อหน้า) สองขนาดตามฉลากจริงที่ร้านใช้
package printer

import (
	"bytes"
	"errors"
	"html/template"

	"order_console/model"
	"order_console/pkg/normalize"
)

// แท็กขนาดฉลากที่รองรับ
const (
	FormatA6     = "A6"
	Format100x75 = "100x75"
)

var ErrUnknownFormat = errors.New("unknown label format")

// labelFormat ขนาดหน้ากระดาษและขนาดฟอนต์ โครงหน้าเหมือนกันทุกขนาด
type labelFormat struct {
	PageSize  string
	Margin    string
	Width     string
	Height    string
	Padding   string
	HeadSize  string
	HeadGap   string
	NameSize  string
	NameGap   string
	AddrSize  string
	AddrGap   string
	PhoneSize string
}

var formats = map[string]labelFormat{
	FormatA6: {
		PageSize: "A6 landscape", Margin: "1cm",
		Width: "148mm", Height: "105mm", Padding: "1cm",
		HeadSize: "18px", HeadGap: "5mm",
		NameSize: "16px", NameGap: "3mm",
		AddrSize: "14px", AddrGap: "3mm",
		PhoneSize: "16px",
	},
	Format100x75: {
		PageSize: "100mm 75mm", Margin: "5mm",
		Width: "100mm", Height: "75mm", Padding: "5mm",
		HeadSize: "16px", HeadGap: "3mm",
		NameSize: "14px", NameGap: "2mm",
		AddrSize: "12px", AddrGap: "2mm",
		PhoneSize: "14px",
	},
}

const labelTemplate = `<html>
<head>
<title>Print {{.Title}}</title>
<meta charset="utf-8">
<style>
@import url('https://fonts.googleapis.com/css2?family=Noto+Sans+Thai&display=swap');
body { font-family: 'Noto Sans Thai'; margin: 0; }
@page { size: {{.Format.PageSize}}; margin: {{.Format.Margin}}; }
.page {
    width: {{.Format.Width}}; height: {{.Format.Height}}; padding: {{.Format.Padding}}; box-sizing: border-box;
    border: 1px dashed #ccc; display: flex; flex-direction: column;
    justify-content: center; page-break-after: always;
}
h1 { margin: 0 0 {{.Format.HeadGap}} 0; font-size: {{.Format.HeadSize}}; }
.name { font-size: {{.Format.NameSize}}; font-weight: bold; margin-bottom: {{.Format.NameGap}}; }
.address { font-size: {{.Format.AddrSize}}; margin-bottom: {{.Format.AddrGap}}; }
.phone { font-size: {{.Format.PhoneSize}}; font-weight: bold; }
</style>
</head>
<body>
{{range .Pages}}<div class="page">
<h1>ผู้รับ ({{.OrderID}})</h1>
<div class="name">{{.Name}}</div>
<div class="address">{{.Address}}</div>
<div class="phone">โทร. {{.Phone}}</div>
</div>
{{end}}</body>
</html>
`

var labelTmpl = template.Must(template.New("labels").Parse(labelTemplate))

type labelPage struct {
	OrderID string
	Name    string
	Address string
	Phone   string
}

// Generate สร้างเอกสารฉลากจากรายการออร์เดอร์ตามขนาดที่เลือก
// ฟิลด์ที่ขาดพิมพ์เป็นบรรทัดว่าง ไม่ error ผลลัพธ์เอาไปแสดง/สั่งพิมพ์ได้ทันที
func Generate(orders []model.Order, format string) (string, error) {
	f, ok := formats[format]
	if !ok {
		return "", ErrUnknownFormat
	}

	pages := make([]labelPage, 0, len(orders))
	for _, o := range orders {
		pages = append(pages, labelPage{
			OrderID: o.OrderID,
			Name:    o.CustomerName,
			Address: o.CustomerAddress,
			Phone:   normalize.PhoneForDisplay(o.CustomerPhone),
		})
	}

	var buf bytes.Buffer
	err := labelTmpl.Execute(&buf, struct {
		Title  string
		Format labelFormat
		Pages  []labelPage
	}{
		Title:  format,
		Format: f,
		Pages:  pages,
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
