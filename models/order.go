package models

// OrderLine adalah snapshot dari MenuItem saat item ditambahkan ke order.
// Perubahan atau penghapusan item di catalog tidak mempengaruhi line yang
// sudah ada.
type OrderLine struct {
	MenuItem
	Qty int `json:"qty"`
}

// Order adalah keranjang aktif untuk satu meja. Order tidak pernah
// dipersist; hanya ticket hasil submit yang durable.
type Order struct {
	Table int         `json:"table"`
	Lines []OrderLine `json:"lines"`
}

// AddLine menambahkan line baru dengan qty=1. Item yang sama boleh muncul
// dua kali sebagai line terpisah (tidak ada merging).
func (o *Order) AddLine(item MenuItem) {
	o.Lines = append(o.Lines, OrderLine{MenuItem: item, Qty: 1})
}

// ChangeQty menggeser qty line pada index sebesar delta, dengan batas bawah 1.
// Index di luar range adalah no-op.
func (o *Order) ChangeQty(index, delta int) {
	if index < 0 || index >= len(o.Lines) {
		return
	}
	qty := o.Lines[index].Qty + delta
	if qty < 1 {
		qty = 1
	}
	o.Lines[index].Qty = qty
}

// RemoveLine menghapus line pada index. Index di luar range adalah no-op.
func (o *Order) RemoveLine(index int) {
	if index < 0 || index >= len(o.Lines) {
		return
	}
	o.Lines = append(o.Lines[:index], o.Lines[index+1:]...)
}

// Total menghitung jumlah price*qty tanpa pembulatan. Pembulatan dua digit
// hanya dilakukan di boundary response untuk display.
func (o *Order) Total() float64 {
	var total float64
	for _, line := range o.Lines {
		total += line.Price * float64(line.Qty)
	}
	return total
}

// Clear mengosongkan order tanpa menyentuh catalog maupun meja aktif.
func (o *Order) Clear() {
	o.Lines = nil
}

func (o *Order) Empty() bool {
	return len(o.Lines) == 0
}
