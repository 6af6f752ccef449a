package state

import (
	"encoding/json"

	"github.com/yeremiapane/resto-lite/models"
)

// Backup adalah bentuk file export/import: menu dan gallery, tanpa field
// versi. Antrian dapur tidak ikut dibackup.
type Backup struct {
	Menu    []models.MenuItem     `json:"menu"`
	Gallery []models.GalleryImage `json:"gallery"`
}

// Export mengembalikan snapshot menu dan gallery saat ini.
func (a *App) Export() Backup {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Backup{
		Menu:    append([]models.MenuItem(nil), a.catalog...),
		Gallery: append([]models.GalleryImage(nil), a.gallery...),
	}
}

// Import menerapkan file backup secara apply-or-not: JSON rusak berarti
// tidak ada perubahan sama sekali. Key yang ada menimpa koleksi utuh,
// key yang absen membiarkan koleksi lama.
func (a *App) Import(raw []byte) error {
	var doc struct {
		Menu    *[]models.MenuItem     `json:"menu"`
		Gallery *[]models.GalleryImage `json:"gallery"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return ErrBadBackup
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if doc.Menu != nil {
		a.catalog = *doc.Menu
		for _, item := range a.catalog {
			if item.ID > a.lastMenuID {
				a.lastMenuID = item.ID
			}
		}
		if err := a.store.SaveCatalog(a.catalog); err != nil {
			return err
		}
	}
	if doc.Gallery != nil {
		a.gallery = *doc.Gallery
		if err := a.store.SaveGallery(a.gallery); err != nil {
			return err
		}
	}
	return nil
}
