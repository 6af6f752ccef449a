package state

import (
	"github.com/yeremiapane/resto-lite/models"
)

// Gallery mengembalikan salinan daftar gambar.
func (a *App) Gallery() []models.GalleryImage {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]models.GalleryImage(nil), a.gallery...)
}

// AddGalleryImage menyimpan hasil baca file (data-URI base64) sebagai
// entri gallery baru.
func (a *App) AddGalleryImage(src string) (models.GalleryImage, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	image := models.GalleryImage{
		ID:  a.now().UnixMilli(),
		Src: src,
	}
	gallery := append(a.gallery, image)
	if err := a.store.SaveGallery(gallery); err != nil {
		return models.GalleryImage{}, err
	}
	a.gallery = gallery
	return image, nil
}

func (a *App) DeleteGalleryImage(id int64) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.gallery {
		if a.gallery[i].ID != id {
			continue
		}
		a.gallery = append(a.gallery[:i], a.gallery[i+1:]...)
		return a.store.SaveGallery(a.gallery)
	}
	return ErrUnknownImage
}
