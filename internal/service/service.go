// Package service реализует бизнес-логику приёма заказов.
package service

import (
	"fmt"
	"maps"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mmeshcher/kanomjeen-system/internal/catalog"
	"github.com/mmeshcher/kanomjeen-system/internal/model"
)

// Repository описывает контракт хранилища заказов, используемый сервисом.
type Repository interface {
	List() []model.Order
	Get(id string) (model.Order, error)
	Append(order model.Order)
	Update(order model.Order) error
	Delete(id string) error
}

// ValidationError перечисляет обязательные поля, не заполненные перед фиксацией заказа.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return "draft is incomplete: missing " + strings.Join(e.Missing, ", ")
}

// Group объединяет заказы одной зоны доставки.
type Group struct {
	Location string
	Orders   []model.Order
}

// Service содержит состояние сессии: черновик заказа, признак редактирования
// и доступ к хранилищу зафиксированных заказов.
type Service struct {
	repo      Repository
	draft     model.Draft
	editingID string
}

// NewService создаёт сервис поверх указанного хранилища.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SetCustomerName записывает имя покупателя в черновик.
func (s *Service) SetCustomerName(v string) { s.draft.CustomerName = v }

// SetFacebook записывает имя в фейсбуке в черновик.
func (s *Service) SetFacebook(v string) { s.draft.Facebook = v }

// SetPhone записывает телефон в черновик.
func (s *Service) SetPhone(v string) { s.draft.Phone = v }

// SetLocation записывает зону доставки в черновик.
func (s *Service) SetLocation(v string) { s.draft.Location = v }

// SetPaid записывает отметку об оплате в черновик.
func (s *Service) SetPaid(v bool) { s.draft.Paid = v }

// SetDelivered записывает отметку о доставке в черновик.
func (s *Service) SetDelivered(v bool) { s.draft.Delivered = v }

// SetItemQuantity разбирает введённое количество и записывает его в черновик,
// заменяя прежнее значение. Пустой или нечисловой ввод трактуется как 0,
// отрицательные значения не отклоняются. Возвращает записанное количество.
func (s *Service) SetItemQuantity(menuKey, raw string) int {
	qty, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		qty = 0
	}
	if s.draft.Items == nil {
		s.draft.Items = make(map[string]int)
	}
	s.draft.Items[menuKey] = qty
	return qty
}

// Draft возвращает копию текущего черновика.
func (s *Service) Draft() model.Draft {
	d := s.draft
	d.Items = maps.Clone(s.draft.Items)
	return d
}

// Editing сообщает, идёт ли редактирование ранее зафиксированного заказа.
func (s *Service) Editing() bool { return s.editingID != "" }

// Submit фиксирует черновик: при редактировании заменяет заказ на его месте
// в хранилище, иначе добавляет новый заказ в конец. Если имя, телефон или
// зона доставки не заполнены, возвращает *ValidationError, а черновик и
// хранилище остаются без изменений. После успешной фиксации черновик
// сбрасывается и режим редактирования снимается.
func (s *Service) Submit() (model.Order, error) {
	var missing []string
	if s.draft.CustomerName == "" {
		missing = append(missing, "customer name")
	}
	if s.draft.Phone == "" {
		missing = append(missing, "phone")
	}
	if s.draft.Location == "" {
		missing = append(missing, "location")
	}
	if len(missing) > 0 {
		return model.Order{}, &ValidationError{Missing: missing}
	}

	order := model.Order{
		CustomerName: s.draft.CustomerName,
		Facebook:     s.draft.Facebook,
		Phone:        s.draft.Phone,
		Location:     s.draft.Location,
		Paid:         s.draft.Paid,
		Delivered:    s.draft.Delivered,
		Items:        maps.Clone(s.draft.Items),
	}

	if s.editingID != "" {
		order.ID = s.editingID
		if err := s.repo.Update(order); err != nil {
			return model.Order{}, fmt.Errorf("update order: %w", err)
		}
	} else {
		order.ID = uuid.NewString()
		s.repo.Append(order)
	}

	s.reset()
	return order, nil
}

// BeginEdit загружает заказ в черновик; следующий Submit заменит его,
// а не добавит новый.
func (s *Service) BeginEdit(id string) error {
	o, err := s.repo.Get(id)
	if err != nil {
		return err
	}

	s.draft = model.Draft{
		CustomerName: o.CustomerName,
		Facebook:     o.Facebook,
		Phone:        o.Phone,
		Location:     o.Location,
		Paid:         o.Paid,
		Delivered:    o.Delivered,
		Items:        maps.Clone(o.Items),
	}
	s.editingID = o.ID
	return nil
}

// CancelEdit сбрасывает черновик и снимает режим редактирования.
func (s *Service) CancelEdit() { s.reset() }

// Orders возвращает все заказы в порядке фиксации.
func (s *Service) Orders() []model.Order {
	return s.repo.List()
}

// GroupedOrders разбивает заказы по зонам доставки. Зоны без заказов
// опускаются; зоны из справочника идут в порядке справочника, прочие
// следуют в порядке первого появления. Внутри зоны сохраняется порядок фиксации.
func (s *Service) GroupedOrders() []Group {
	orders := s.repo.List()

	byLocation := make(map[string][]model.Order)
	var extra []string
	for _, o := range orders {
		if _, seen := byLocation[o.Location]; !seen && !catalog.IsLocation(o.Location) {
			extra = append(extra, o.Location)
		}
		byLocation[o.Location] = append(byLocation[o.Location], o)
	}

	var groups []Group
	for _, loc := range catalog.Locations {
		if list, ok := byLocation[loc]; ok {
			groups = append(groups, Group{Location: loc, Orders: list})
		}
	}
	for _, loc := range extra {
		groups = append(groups, Group{Location: loc, Orders: byLocation[loc]})
	}
	return groups
}

// TogglePaid переключает отметку об оплате и возвращает обновлённый заказ.
func (s *Service) TogglePaid(id string) (model.Order, error) {
	o, err := s.repo.Get(id)
	if err != nil {
		return model.Order{}, err
	}
	o.Paid = !o.Paid
	if err := s.repo.Update(o); err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// ToggleDelivered переключает отметку о доставке и возвращает обновлённый заказ.
func (s *Service) ToggleDelivered(id string) (model.Order, error) {
	o, err := s.repo.Get(id)
	if err != nil {
		return model.Order{}, err
	}
	o.Delivered = !o.Delivered
	if err := s.repo.Update(o); err != nil {
		return model.Order{}, err
	}
	return o, nil
}

// DeleteOrder удаляет заказ. Порядок остальных заказов сохраняется.
// Удаление редактируемого заказа дополнительно снимает режим редактирования.
func (s *Service) DeleteOrder(id string) error {
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	if s.editingID == id {
		s.reset()
	}
	return nil
}

func (s *Service) reset() {
	s.draft = model.Draft{}
	s.editingID = ""
}
