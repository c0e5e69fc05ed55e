// Package compression - пакет для сжатия тела ответа
package compression

import (
	"bytes"
	"compress/gzip"
)

// Gzip - сжимаем содержимое целиком в памяти;
// результат всегда в формате gzip, даже для пустого содержимого
func Gzip(content []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(content); err != nil {
		return nil, err
	}
	// Close дописывает в буфер хвост gzip потока
	if err := zw.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
