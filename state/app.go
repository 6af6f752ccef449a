package state

import (
	"errors"
	"sync"
	"time"

	"github.com/yeremiapane/resto-lite/models"
	"github.com/yeremiapane/resto-lite/store"
)

var (
	ErrInvalidCategory = errors.New("category must be one of: food, drink, snack, dessert")
	ErrEmptyName       = errors.New("name is required")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrUnknownMenuItem = errors.New("menu item not found")
	ErrUnknownTicket   = errors.New("ticket not found")
	ErrUnknownImage    = errors.New("gallery image not found")
	ErrInvalidTable    = errors.New("table number out of range")
	ErrEmptyOrder      = errors.New("order is empty, nothing to send to the kitchen")
	ErrBadBackup       = errors.New("backup file is not valid JSON")
)

// App memegang seluruh state aplikasi di satu struct eksplisit yang dimiliki
// controller, bukan singleton ambient. Satu mutex menserialkan semua mutasi
// sehingga tiap handler tetap menjadi reaksi atomik tunggal.
type App struct {
	mu    sync.Mutex
	store *store.Store

	catalog []models.MenuItem
	gallery []models.GalleryImage
	queue   []models.KitchenTicket

	// Order aktif bersifat ephemeral: sengaja tidak dipersist, hanya
	// ticket hasil submit yang durable.
	order models.Order

	lastMenuID   uint
	lastTicketID int64
	now          func() time.Time
}

// New memuat semua slot dari store. Catalog korup/kosong jatuh ke default,
// koleksi lain jatuh ke kosong.
func New(st *store.Store) *App {
	app := &App{
		store:   st,
		catalog: st.LoadCatalog(),
		gallery: st.LoadGallery(),
		queue:   st.LoadKitchen(),
		order:   models.Order{Table: 1},
		now:     time.Now,
	}
	for _, ticket := range app.queue {
		if ticket.ID > app.lastTicketID {
			app.lastTicketID = ticket.ID
		}
	}
	for _, item := range app.catalog {
		if item.ID > app.lastMenuID {
			app.lastMenuID = item.ID
		}
	}
	return app
}
