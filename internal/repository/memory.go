// Package repository реализует хранилище заказов текущей сессии.
package repository

import (
	"errors"
	"sync"

	"github.com/mmeshcher/kanomjeen-system/internal/model"
)

// ErrOrderNotFound возвращается, когда заказ с указанным идентификатором отсутствует в хранилище.
var ErrOrderNotFound = errors.New("order not found")

// MemoryRepository хранит заказы в памяти в порядке их фиксации.
// Состояние живёт только в рамках одной сессии приложения.
type MemoryRepository struct {
	mu     sync.Mutex
	orders []model.Order
}

// NewMemoryRepository создаёт пустое хранилище заказов.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// List возвращает копию списка заказов в порядке фиксации.
func (r *MemoryRepository) List() []model.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Order, len(r.orders))
	copy(out, r.orders)
	return out
}

// Get возвращает заказ по идентификатору.
func (r *MemoryRepository) Get(id string) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return model.Order{}, ErrOrderNotFound
}

// Append добавляет заказ в конец списка.
func (r *MemoryRepository) Append(order model.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, order)
}

// Update заменяет заказ с тем же идентификатором, сохраняя его позицию в списке.
func (r *MemoryRepository) Update(order model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.orders {
		if o.ID == order.ID {
			r.orders[i] = order
			return nil
		}
	}
	return ErrOrderNotFound
}

// Delete удаляет заказ; порядок остальных заказов не меняется.
func (r *MemoryRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return ErrOrderNotFound
}
