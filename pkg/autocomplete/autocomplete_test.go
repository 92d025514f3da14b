package autocomplete

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type person struct {
	Name  string
	Phone string
}

func personFields(p person) []string {
	return []string{p.Name, p.Phone}
}

func testPeople() []person {
	return []person{
		{"คุณสมชาย", "'0812345678"},
		{"คุณสมหญิง", "'0899999999"},
		{"คุณมานะ", "66812340000"},
	}
}

func TestInputMatchesAnyField(t *testing.T) {
	ac := New(testPeople, personFields, nil)

	// ค้นจากชื่อ
	got := ac.Input("สมชาย")
	assert.Len(t, got, 1)
	assert.Equal(t, "คุณสมชาย", got[0].Name)

	// ค้นจากเบอร์ก็ต้องเจอ
	got = ac.Input("0899")
	assert.Len(t, got, 1)
	assert.Equal(t, "คุณสมหญิง", got[0].Name)

	// ตัวอักษรละตินไม่สนตัวพิมพ์
	src := func() []person { return []person{{"ACME Shop", "021112222"}} }
	ac2 := New(src, personFields, nil)
	assert.Len(t, ac2.Input("acme"), 1)
	assert.Len(t, ac2.Input("ACME"), 1)
}

func TestInputEmptyClosesList(t *testing.T) {
	ac := New(testPeople, personFields, nil)
	ac.Input("สม")
	assert.NotEmpty(t, ac.Suggestions())

	assert.Nil(t, ac.Input(""))
	assert.Empty(t, ac.Suggestions())
	assert.Equal(t, -1, ac.Focus())
}

func TestSuggestionCap(t *testing.T) {
	src := func() []person {
		people := make([]person, 25)
		for i := range people {
			people[i] = person{Name: fmt.Sprintf("คุณลูกค้า%d", i), Phone: "08"}
		}
		return people
	}
	ac := New(src, personFields, nil)
	assert.Len(t, ac.Input("ลูกค้า"), MaxSuggestions)
}

func TestCircularNavigation(t *testing.T) {
	ac := New(testPeople, personFields, nil)
	ac.Input("คุณ") // ติดทั้ง 3 คน

	// ยังไม่กดลูกศร Enter ต้องไม่เลือกอะไร
	assert.False(t, ac.Enter())

	ac.Next()
	assert.Equal(t, 0, ac.Focus())
	ac.Next()
	ac.Next()
	assert.Equal(t, 2, ac.Focus())
	// เลยท้ายรายการต้องวนกลับหัว
	ac.Next()
	assert.Equal(t, 0, ac.Focus())
	// ถอยพ้นหัวต้องวนไปท้าย
	ac.Prev()
	assert.Equal(t, 2, ac.Focus())
}

func TestEnterSelectsHighlighted(t *testing.T) {
	var picked person
	ac := New(testPeople, personFields, func(p person) { picked = p })
	ac.Input("คุณ")
	ac.Next()
	ac.Next() // focus = 1

	assert.True(t, ac.Enter())
	assert.Equal(t, "คุณสมหญิง", picked.Name)
	// เลือกแล้วรายการต้องปิด
	assert.Empty(t, ac.Suggestions())
	assert.False(t, ac.Enter())
}

func TestIndependentInstances(t *testing.T) {
	// ผูกสองช่องพร้อมกัน สถานะต้องแยกขาดจากกัน
	a := New(testPeople, personFields, nil)
	b := New(testPeople, personFields, nil)

	a.Input("สม")
	b.Input("มานะ")
	a.Next()

	assert.Len(t, a.Suggestions(), 2)
	assert.Len(t, b.Suggestions(), 1)
	assert.Equal(t, 0, a.Focus())
	assert.Equal(t, -1, b.Focus())

	// ปิดตัวหนึ่ง อีกตัวต้องยังเปิดอยู่
	a.Close()
	assert.Empty(t, a.Suggestions())
	assert.Len(t, b.Suggestions(), 1)
}
