package store

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/resto-lite/models"
	"github.com/yeremiapane/resto-lite/utils"
)

// Nama slot penyimpanan. Setiap slot berisi satu dokumen JSON utuh.
const (
	SlotCatalog = "catalog"
	SlotGallery = "gallery"
	SlotKitchen = "kitchen"
)

// Slot adalah baris key-value: satu koleksi = satu dokumen JSON.
// Tidak ada versioning maupun migration path untuk isi slot.
type Slot struct {
	// KEY adalah reserved word di MySQL, jadi kolomnya bernama slot_key.
	Key   string `gorm:"column:slot_key;primaryKey;type:varchar(64)"`
	Value string `gorm:"type:longtext"`
}

type Store struct {
	DB *gorm.DB
}

func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&Slot{}); err != nil {
		return nil, err
	}
	return &Store{DB: db}, nil
}

// saveSlot menulis ulang seluruh koleksi ke slotnya. Last write wins,
// tidak ada partial write.
func (s *Store) saveSlot(key string, collection interface{}) error {
	raw, err := json.Marshal(collection)
	if err != nil {
		return err
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Slot{Key: key, Value: string(raw)}).Error
}

func (s *Store) loadSlot(key string, out interface{}) error {
	var slot Slot
	if err := s.DB.First(&slot, "slot_key = ?", key).Error; err != nil {
		return err
	}
	return json.Unmarshal([]byte(slot.Value), out)
}

func (s *Store) SaveCatalog(catalog []models.MenuItem) error {
	return s.saveSlot(SlotCatalog, catalog)
}

// LoadCatalog mengembalikan catalog tersimpan. Slot yang belum ada atau
// korup jatuh ke default catalog bawaan, tanpa partial recovery.
func (s *Store) LoadCatalog() []models.MenuItem {
	var catalog []models.MenuItem
	if err := s.loadSlot(SlotCatalog, &catalog); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorLogger.Printf("catalog slot unreadable, using defaults: %v", err)
		}
		return models.DefaultCatalog()
	}
	return catalog
}

func (s *Store) SaveGallery(gallery []models.GalleryImage) error {
	return s.saveSlot(SlotGallery, gallery)
}

func (s *Store) LoadGallery() []models.GalleryImage {
	var gallery []models.GalleryImage
	if err := s.loadSlot(SlotGallery, &gallery); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorLogger.Printf("gallery slot unreadable, starting empty: %v", err)
		}
		return nil
	}
	return gallery
}

func (s *Store) SaveKitchen(queue []models.KitchenTicket) error {
	return s.saveSlot(SlotKitchen, queue)
}

func (s *Store) LoadKitchen() []models.KitchenTicket {
	var queue []models.KitchenTicket
	if err := s.loadSlot(SlotKitchen, &queue); err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.ErrorLogger.Printf("kitchen slot unreadable, starting empty: %v", err)
		}
		return nil
	}
	return queue
}
