// Package autocomplete เอนจินคำแนะนำแบบ generic ใช้ซ้ำได้กับข้อมูลทุกชนิด
// แต่ละ instance ถือสถานะของตัวเอง (รายการที่เปิดอยู่ + ตำแหน่ง highlight)
// ผูกหลายช่องพร้อมกันได้โดยไม่รบกวนกัน
package autocomplete

import "strings"

// MaxSuggestions เพดานจำนวนคำแนะนำที่แสดงต่อครั้ง
const MaxSuggestions = 10

// Autocomplete ผูกแหล่งข้อมูล ตัวดึงค่าฟิลด์ และ callback ตอนเลือกเข้าด้วยกัน
type Autocomplete[T any] struct {
	source   func() []T
	fields   func(T) []string
	onSelect func(T)

	open    []T // รายการที่เปิดแสดงอยู่ ว่าง = ปิด
	focus   int // ตำแหน่งที่ highlight (-1 = ยังไม่เลือก)
	hasOpen bool
}

// New สร้าง instance ใหม่
// source คืนคอลเลกชันปัจจุบัน fields แตกเรคอร์ดเป็นค่าฟิลด์แบบ string
// onSelect ถูกเรียกเมื่อผู้ใช้เลือกรายการ
func New[T any](source func() []T, fields func(T) []string, onSelect func(T)) *Autocomplete[T] {
	return &Autocomplete[T]{
		source:   source,
		fields:   fields,
		onSelect: onSelect,
		focus:    -1,
	}
}

// Input ประมวลผลข้อความที่พิมพ์ใหม่ทั้งก้อน
// ปิดรายการเดิมก่อนเสมอ แล้วสแกนแหล่งข้อมูลใหม่ทุกครั้ง (ไม่ทำ index)
func (a *Autocomplete[T]) Input(val string) []T {
	a.Close()
	if val == "" {
		return nil
	}

	data := a.source()
	if data == nil {
		return nil
	}

	needle := strings.ToLower(val)
	for _, item := range data {
		if len(a.open) >= MaxSuggestions {
			break
		}
		if matches(a.fields(item), needle) {
			a.open = append(a.open, item)
		}
	}
	a.hasOpen = len(a.open) > 0
	return a.open
}

// matches เรคอร์ดติดผลลัพธ์ถ้าฟิลด์ใดฟิลด์หนึ่งมีคำค้นเป็น substring
func matches(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

// Next เลื่อน highlight ลงหนึ่งตำแหน่ง วนกลับหัวเมื่อสุดรายการ
func (a *Autocomplete[T]) Next() {
	if !a.hasOpen {
		return
	}
	a.focus++
	if a.focus >= len(a.open) {
		a.focus = 0
	}
}

// Prev เลื่อน highlight ขึ้นหนึ่งตำแหน่ง วนไปท้ายเมื่อพ้นหัวรายการ
func (a *Autocomplete[T]) Prev() {
	if !a.hasOpen {
		return
	}
	a.focus--
	if a.focus < 0 {
		a.focus = len(a.open) - 1
	}
}

// Enter เลือกตัวที่ highlight อยู่ คืน false ถ้ายังไม่มีตัวที่ highlight
// เลือกแล้วรายการปิดเหมือนการคลิกเลือกในหน้าจอ
func (a *Autocomplete[T]) Enter() bool {
	if !a.hasOpen || a.focus < 0 || a.focus >= len(a.open) {
		return false
	}
	item := a.open[a.focus]
	a.Close()
	if a.onSelect != nil {
		a.onSelect(item)
	}
	return true
}

// Select เลือกรายการตาม index ตรง ๆ (เทียบเท่าการคลิก)
func (a *Autocomplete[T]) Select(i int) bool {
	if i < 0 || i >= len(a.open) {
		return false
	}
	item := a.open[i]
	a.Close()
	if a.onSelect != nil {
		a.onSelect(item)
	}
	return true
}

// Close ปิดรายการและล้างตำแหน่ง highlight
func (a *Autocomplete[T]) Close() {
	a.open = nil
	a.focus = -1
	a.hasOpen = false
}

// Suggestions รายการที่เปิดแสดงอยู่
func (a *Autocomplete[T]) Suggestions() []T {
	return a.open
}

// Focus ตำแหน่งที่ highlight อยู่ (-1 = ไม่มี)
func (a *Autocomplete[T]) Focus() int {
	return a.focus
}
