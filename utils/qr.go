package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// DefaultQREndpoint adalah layanan render QR eksternal. Tidak ada encoding
// QR lokal; rendering sepenuhnya didelegasikan.
const DefaultQREndpoint = "https://api.qrserver.com/v1/create-qr-code/"

// MenuURL membangun URL menu publik untuk satu meja: base tanpa query
// string lama, ditambah parameter table.
func MenuURL(base string, table int) string {
	if i := strings.IndexByte(base, '?'); i >= 0 {
		base = base[:i]
	}
	return fmt.Sprintf("%s?table=%d", base, table)
}

// QRImageURL menyematkan MenuURL ke endpoint gambar QR eksternal.
func QRImageURL(endpoint, base string, table int) string {
	if endpoint == "" {
		endpoint = DefaultQREndpoint
	}
	params := url.Values{}
	params.Set("size", "220x220")
	params.Set("data", MenuURL(base, table))
	return endpoint + "?" + params.Encode()
}
