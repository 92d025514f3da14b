package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"order_console/model"
)

func TestGenerateOnePagePerOrder(t *testing.T) {
	orders := []model.Order{
		{OrderID: "690101001", CustomerName: "คุณสมชาย ใจดี", CustomerAddress: "99/1 ถ.สุขุมวิท กรุงเทพฯ", CustomerPhone: "'0812345678"},
		{OrderID: "690101002", CustomerName: "คุณสมหญิง รักงาม", CustomerAddress: "12 หมู่ 5 เชียงใหม่", CustomerPhone: "'0898765432"},
		{OrderID: "690101003", CustomerName: "คุณ Somchai", CustomerAddress: "ภูเก็ต", CustomerPhone: "'0811111111"},
	}

	html, err := Generate(orders, FormatA6)
	require.NoError(t, err)

	assert.Equal(t, 3, strings.Count(html, `class="page"`))
	assert.Contains(t, html, "ผู้รับ (690101001)")
	assert.Contains(t, html, "คุณสมหญิง รักงาม")
	// เบอร์โทรต้องถอด quote ของชีตออกก่อนพิมพ์
	assert.Contains(t, html, "โทร. 0812345678")
	assert.NotContains(t, html, "&#39;0812345678")
}

func TestGenerateFormats(t *testing.T) {
	orders := []model.Order{{OrderID: "690101001", CustomerName: "คุณสมชาย"}}

	html, err := Generate(orders, FormatA6)
	require.NoError(t, err)
	assert.Contains(t, html, "A6 landscape")
	assert.Contains(t, html, "148mm")

	html, err = Generate(orders, Format100x75)
	require.NoError(t, err)
	assert.Contains(t, html, "100mm 75mm")
	assert.Contains(t, html, "height: 75mm")
}

func TestGenerateMissingFields(t *testing.T) {
	// ที่อยู่หาย พิมพ์เป็นบรรทัดว่าง ไม่ error
	orders := []model.Order{{OrderID: "690101001", CustomerName: "คุณสมชาย"}}

	html, err := Generate(orders, Format100x75)
	require.NoError(t, err)
	assert.Contains(t, html, `<div class="address"></div>`)
}

func TestGenerateUnknownFormat(t *testing.T) {
	_, err := Generate(nil, "A4")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestGenerateEmptyOrders(t *testing.T) {
	html, err := Generate(nil, FormatA6)
	require.NoError(t, err)
	assert.Equal(t, 0, strings.Count(html, `class="page"`))
}
