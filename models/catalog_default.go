package models

// DefaultCatalog dipakai saat slot catalog belum ada atau isinya korup.
// Daftar ini sengaja kecil, cukup untuk demo pertama kali dibuka.
func DefaultCatalog() []MenuItem {
	return []MenuItem{
		{ID: 1, Category: CategoryFood, Name: "Nasi Goreng Spesial", Price: 25000, Notes: "Pedas level 1-3"},
		{ID: 2, Category: CategoryFood, Name: "Mie Ayam Bakso", Price: 20000},
		{ID: 3, Category: CategoryDrink, Name: "Es Teh Manis", Price: 5000},
		{ID: 4, Category: CategoryDrink, Name: "Kopi Susu", Price: 12000},
		{ID: 5, Category: CategorySnack, Name: "Tahu Crispy", Price: 10000},
		{ID: 6, Category: CategoryDessert, Name: "Pisang Goreng Keju", Price: 15000},
	}
}
