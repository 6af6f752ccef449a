package utils

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime/multipart"
)

// FileToDataURI membaca file upload sampai habis lalu meng-encode-nya
// sebagai data-URI base64. Hasilnya dipakai sebagai satu update atomik:
// kalau baca gagal, tidak ada state yang berubah.
func FileToDataURI(header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(raw)), nil
}
