package models

// Jumlah meja fisik bersifat tetap; nomor meja valid adalah 1..TableCount.
const TableCount = 14

func ValidTable(table int) bool {
	return table >= 1 && table <= TableCount
}
