package state

import (
	"github.com/yeremiapane/resto-lite/models"
)

// Tickets mengembalikan salinan antrian dapur, paling baru di depan.
func (a *App) Tickets() []models.KitchenTicket {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.KitchenTicket(nil), a.queue...)
}

// Submit membekukan order aktif menjadi KitchenTicket baru berstatus
// pending di depan antrian, lalu mengosongkan order dalam satu langkah
// logis. Order kosong ditolak tanpa menyentuh antrian maupun order.
func (a *App) Submit() (models.KitchenTicket, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.order.Empty() {
		return models.KitchenTicket{}, ErrEmptyOrder
	}

	now := a.now()
	ticket := models.KitchenTicket{
		ID:     a.nextTicketID(now.UnixMilli()),
		Table:  a.order.Table,
		Items:  append([]models.OrderLine(nil), a.order.Lines...),
		Time:   now,
		Status: models.TicketPending,
	}

	queue := append([]models.KitchenTicket{ticket}, a.queue...)
	if err := a.store.SaveKitchen(queue); err != nil {
		// Submit gagal: antrian dan order dibiarkan apa adanya.
		return models.KitchenTicket{}, err
	}
	a.queue = queue
	a.order.Clear()
	return ticket, nil
}

// MarkDone memindahkan ticket ke status done. Transisi ini terminal;
// panggilan kedua untuk ticket yang sama adalah no-op (changed=false).
func (a *App) MarkDone(ticketID int64) (models.KitchenTicket, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.queue {
		if a.queue[i].ID != ticketID {
			continue
		}
		if a.queue[i].Status == models.TicketDone {
			return a.queue[i], false, nil
		}
		a.queue[i].Status = models.TicketDone
		if err := a.store.SaveKitchen(a.queue); err != nil {
			a.queue[i].Status = models.TicketPending
			return models.KitchenTicket{}, false, err
		}
		return a.queue[i], true, nil
	}
	return models.KitchenTicket{}, false, ErrUnknownTicket
}

// nextTicketID memakai unix millis, dengan bump monotonik bila dua submit
// jatuh di milidetik yang sama. Dipanggil dengan mutex sudah dipegang.
func (a *App) nextTicketID(millis int64) int64 {
	if millis <= a.lastTicketID {
		millis = a.lastTicketID + 1
	}
	a.lastTicketID = millis
	return millis
}
