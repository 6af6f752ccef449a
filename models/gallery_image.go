package models

// GalleryImage hanya penyimpanan: tidak ada workflow di atasnya.
type GalleryImage struct {
	ID  int64  `json:"id"`
	Src string `json:"src"`
}
