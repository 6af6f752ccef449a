package state

import (
	"strings"

	"github.com/yeremiapane/resto-lite/models"
)

// Catalog mengembalikan salinan daftar menu.
func (a *App) Catalog() []models.MenuItem {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.MenuItem(nil), a.catalog...)
}

// MenuItem mencari item berdasarkan id.
func (a *App) MenuItem(id uint) (models.MenuItem, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, item := range a.catalog {
		if item.ID == id {
			return item, nil
		}
	}
	return models.MenuItem{}, ErrUnknownMenuItem
}

func validateMenuItem(item models.MenuItem) error {
	if strings.TrimSpace(item.Name) == "" {
		return ErrEmptyName
	}
	if !models.ValidCategory(item.Category) {
		return ErrInvalidCategory
	}
	if item.Price < 0 {
		return ErrNegativePrice
	}
	return nil
}

// AddMenuItem menambahkan item baru dengan id = max+1. Validasi gagal
// berarti tidak ada perubahan state sama sekali.
func (a *App) AddMenuItem(item models.MenuItem) (models.MenuItem, error) {
	if err := validateMenuItem(item); err != nil {
		return models.MenuItem{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// max+1 di atas catalog saat ini, dijaga high-water mark supaya id
	// bekas item yang dihapus tidak dipakai ulang selama proses hidup.
	id := models.NextID(a.catalog)
	if id <= a.lastMenuID {
		id = a.lastMenuID + 1
	}
	a.lastMenuID = id

	item.ID = id
	a.catalog = append(a.catalog, item)
	if err := a.store.SaveCatalog(a.catalog); err != nil {
		return models.MenuItem{}, err
	}
	return item, nil
}

// UpdateMenuItem mengganti seluruh field item (kecuali ID) untuk id yang ada.
func (a *App) UpdateMenuItem(id uint, item models.MenuItem) (models.MenuItem, error) {
	if err := validateMenuItem(item); err != nil {
		return models.MenuItem{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.catalog {
		if a.catalog[i].ID != id {
			continue
		}
		item.ID = id
		a.catalog[i] = item
		if err := a.store.SaveCatalog(a.catalog); err != nil {
			return models.MenuItem{}, err
		}
		return item, nil
	}
	return models.MenuItem{}, ErrUnknownMenuItem
}

// SetMenuItemImage memasang hasil baca file (sudah berbentuk data-URI
// base64) ke item dalam satu update atomik.
func (a *App) SetMenuItemImage(id uint, image string) (models.MenuItem, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.catalog {
		if a.catalog[i].ID != id {
			continue
		}
		a.catalog[i].Image = image
		if err := a.store.SaveCatalog(a.catalog); err != nil {
			return models.MenuItem{}, err
		}
		return a.catalog[i], nil
	}
	return models.MenuItem{}, ErrUnknownMenuItem
}

// DeleteMenuItem menghapus item dari catalog. Line order dan ticket yang
// sudah menyalin item ini tidak ikut berubah (snapshot independen).
func (a *App) DeleteMenuItem(id uint) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.catalog {
		if a.catalog[i].ID != id {
			continue
		}
		a.catalog = append(a.catalog[:i], a.catalog[i+1:]...)
		return a.store.SaveCatalog(a.catalog)
	}
	return ErrUnknownMenuItem
}
