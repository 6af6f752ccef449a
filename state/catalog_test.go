package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeremiapane/resto-lite/models"
)

func TestNextIDIsMaxPlusOne(t *testing.T) {
	catalog := []models.MenuItem{{ID: 1}, {ID: 3}}
	// max+1, bukan mengisi celah
	assert.Equal(t, uint(4), models.NextID(catalog))

	assert.Equal(t, uint(1), models.NextID(nil))
}

func TestAddMenuItemAssignsFreshID(t *testing.T) {
	app := newTestApp(t)
	before := app.Catalog()
	maxID := before[len(before)-1].ID

	item, err := app.AddMenuItem(models.MenuItem{
		Category: models.CategoryFood,
		Name:     "Sate Ayam",
		Price:    22000,
	})
	require.NoError(t, err)
	assert.Equal(t, maxID+1, item.ID)
	assert.Len(t, app.Catalog(), len(before)+1)
}

func TestDeletedIDsAreNotReused(t *testing.T) {
	app := newTestApp(t)

	added, err := app.AddMenuItem(models.MenuItem{
		Category: models.CategoryDrink,
		Name:     "Jus Alpukat",
		Price:    15000,
	})
	require.NoError(t, err)

	// Hapus item dengan id tertinggi lalu tambah lagi: id lama tidak dipakai ulang
	require.NoError(t, app.DeleteMenuItem(added.ID))

	next, err := app.AddMenuItem(models.MenuItem{
		Category: models.CategoryDrink,
		Name:     "Jus Mangga",
		Price:    15000,
	})
	require.NoError(t, err)
	assert.Equal(t, added.ID+1, next.ID)
}

func TestAddMenuItemValidation(t *testing.T) {
	app := newTestApp(t)
	before := app.Catalog()

	_, err := app.AddMenuItem(models.MenuItem{Category: models.CategoryFood, Name: "  ", Price: 1000})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = app.AddMenuItem(models.MenuItem{Category: "sushi", Name: "Ok", Price: 1000})
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = app.AddMenuItem(models.MenuItem{Category: models.CategoryFood, Name: "Ok", Price: -1})
	assert.ErrorIs(t, err, ErrNegativePrice)

	// Operasi yang gagal tidak meninggalkan jejak
	assert.Equal(t, before, app.Catalog())
}

func TestUpdateMenuItemUnknownID(t *testing.T) {
	app := newTestApp(t)

	_, err := app.UpdateMenuItem(9999, models.MenuItem{
		Category: models.CategoryFood,
		Name:     "Ghost",
		Price:    1,
	})
	assert.ErrorIs(t, err, ErrUnknownMenuItem)
}

func TestCatalogSurvivesRestart(t *testing.T) {
	st := newTestStore(t)
	app := New(st)

	added, err := app.AddMenuItem(models.MenuItem{
		Category: models.CategorySnack,
		Name:     "Cireng",
		Price:    8000,
	})
	require.NoError(t, err)

	reborn := New(st)
	found, err := reborn.MenuItem(added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, found)
}
