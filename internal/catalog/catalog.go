// Package catalog содержит статические справочники зон доставки и меню.
package catalog

import "github.com/mmeshcher/kanomjeen-system/internal/model"

// Locations содержит фиксированный список зон доставки.
var Locations = []string{
	"เขาวง",
	"บัวขาว",
	"แก้งเดื่อ",
	"แจนแลน",
	"สมสะอาด",
	"นาคู",
	"กุดหว้า",
	"กุดค้าว",
	"หนองโง้ง",
	"หนองฟ้าเลื่อน",
	"บ้านค้อ",
	"โพนนาดี",
	"นาไคร้",
}

// Items содержит фиксированное меню. Порядок используется при выводе формы и карточек заказа.
var Items = []model.MenuItem{
	{Key: "nam_plara", Name: "ขนมจีนน้ำปลาร้า", Price: 50},
	{Key: "nam_kapi", Name: "ขนมจีนน้ำกะปิ", Price: 50},
	{Key: "egg", Name: "ไข่ปี้ง", Price: 30},
	{Key: "kanom_sai_sai", Name: "ขนมใส่ไส้", Price: 30},
	{Key: "kalamare", Name: "กาละแม", Price: 40, Note: "3 ถุง 110 บาท", Bulk: &model.BulkRule{GroupSize: 3, GroupPrice: 110}},
	{Key: "chicken_feet", Name: "ตีนไก่ต้มเปื่อย", Price: 30},
	{Key: "kanom_tan", Name: "ขนมตาล", Price: 30},
	{Key: "kanom_chan", Name: "ขนมชั้น", Price: 25},
	{Key: "kanom_tuay", Name: "ขนมถ้วย", Price: 30},
	{Key: "khao_tom", Name: "ข้าวต้มข้าวโพด", Price: 30},
	{Key: "kanom_thua", Name: "ขนมไส้ถั่วเหลือง", Price: 25},
}

// Find возвращает позицию меню по ключу.
func Find(key string) (model.MenuItem, bool) {
	for _, item := range Items {
		if item.Key == key {
			return item, true
		}
	}
	return model.MenuItem{}, false
}

// IsLocation сообщает, входит ли зона в фиксированный список зон доставки.
func IsLocation(name string) bool {
	for _, loc := range Locations {
		if loc == name {
			return true
		}
	}
	return false
}
