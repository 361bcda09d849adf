// Package model содержит доменные сущности системы приёма заказов.
package model

// BulkRule описывает продажу наборами: GroupSize штук за фиксированную цену GroupPrice.
type BulkRule struct {
	GroupSize  int
	GroupPrice int
}

// MenuItem описывает позицию меню. Цена указана в батах.
type MenuItem struct {
	Key   string
	Name  string
	Price int
	Note  string
	Bulk  *BulkRule
}

// Draft представляет заполняемый заказ до фиксации.
// Items хранит количество по ключу позиции меню; нулевые значения допустимы.
type Draft struct {
	CustomerName string
	Facebook     string
	Phone        string
	Location     string
	Paid         bool
	Delivered    bool
	Items        map[string]int
}

// Order представляет зафиксированный заказ.
type Order struct {
	ID           string
	CustomerName string
	Facebook     string
	Phone        string
	Location     string
	Paid         bool
	Delivered    bool
	Items        map[string]int
}
