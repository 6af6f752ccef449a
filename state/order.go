package state

import (
	"github.com/yeremiapane/resto-lite/models"
)

// Order mengembalikan salinan order aktif.
func (a *App) Order() models.Order {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.orderCopy()
}

// AddToOrder menyalin item catalog ke order aktif sebagai line baru qty=1.
// Item yang sama selalu menjadi line terpisah, tidak pernah di-merge.
func (a *App) AddToOrder(menuItemID uint) (models.Order, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, item := range a.catalog {
		if item.ID == menuItemID {
			a.order.AddLine(item)
			return a.orderCopy(), nil
		}
	}
	return models.Order{}, ErrUnknownMenuItem
}

// ChangeQty menyesuaikan qty satu line; qty tidak pernah turun di bawah 1
// dan index di luar range adalah no-op, bukan error.
func (a *App) ChangeQty(index, delta int) models.Order {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.order.ChangeQty(index, delta)
	return a.orderCopy()
}

// RemoveFromOrder membuang satu line; index di luar range adalah no-op.
func (a *App) RemoveFromOrder(index int) models.Order {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.order.RemoveLine(index)
	return a.orderCopy()
}

// ClearOrder mengosongkan order aktif tanpa efek samping lain.
func (a *App) ClearOrder() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.order.Clear()
}

// OrderTotal mengembalikan total eksak (belum dibulatkan).
func (a *App) OrderTotal() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.order.Total()
}

// SetTable memilih meja aktif. Meja berlaku global untuk seluruh order,
// bukan per line.
func (a *App) SetTable(table int) error {
	if !models.ValidTable(table) {
		return ErrInvalidTable
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.order.Table = table
	return nil
}

// orderCopy dipanggil dengan mutex sudah dipegang.
func (a *App) orderCopy() models.Order {
	return models.Order{
		Table: a.order.Table,
		Lines: append([]models.OrderLine(nil), a.order.Lines...),
	}
}
