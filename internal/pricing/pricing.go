// Package pricing вычисляет стоимость заказа по позициям меню.
package pricing

import "github.com/mmeshcher/kanomjeen-system/internal/catalog"

// Total возвращает итоговую стоимость набора позиций в батах.
// Неизвестные ключи и неположительные количества не учитываются.
// Для позиций с правилом набора полные наборы идут по цене набора,
// остаток оплачивается по цене за штуку.
func Total(items map[string]int) int {
	sum := 0
	for key, qty := range items {
		if qty <= 0 {
			continue
		}
		item, ok := catalog.Find(key)
		if !ok {
			continue
		}
		if item.Bulk != nil {
			full := qty / item.Bulk.GroupSize
			rest := qty % item.Bulk.GroupSize
			sum += full*item.Bulk.GroupPrice + rest*item.Price
			continue
		}
		sum += qty * item.Price
	}
	return sum
}
