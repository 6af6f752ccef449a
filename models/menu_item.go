package models

// Kategori menu bersifat tetap; form admin hanya menawarkan pilihan ini.
const (
	CategoryFood    = "food"
	CategoryDrink   = "drink"
	CategorySnack   = "snack"
	CategoryDessert = "dessert"
)

var Categories = []string{CategoryFood, CategoryDrink, CategorySnack, CategoryDessert}

func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type MenuItem struct {
	ID       uint    `json:"id"`
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Notes    string  `json:"notes,omitempty"`
	// Image menyimpan gambar sebagai data-URI base64, bukan path file.
	Image string `json:"image,omitempty"`
}

// NextID mengembalikan max(id)+1 dari catalog, minimal 1.
// ID yang sudah dihapus tidak pernah dipakai ulang selama proses berjalan.
func NextID(catalog []MenuItem) uint {
	var max uint
	for _, item := range catalog {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}
