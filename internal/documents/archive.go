package documents

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// BuildArchive собирает в памяти ZIP с обоими документами предложения.
func BuildArchive(prefix string, excel, word []byte) ([]byte, error) {
	var buf bytes.Buffer

	zw := zip.NewWriter(&buf)

	entries := []struct {
		name string
		data []byte
	}{
		{name: prefix + ".xlsx", data: excel},
		{name: prefix + ".docx", data: word},
	}

	for _, entry := range entries {
		w, err := zw.Create(entry.name)
		if err != nil {
			return nil, fmt.Errorf("zip.Create %s: %w", entry.name, err)
		}

		if _, err := w.Write(entry.data); err != nil {
			return nil, fmt.Errorf("zip.Write %s: %w", entry.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("zip.Close: %w", err)
	}

	return buf.Bytes(), nil
}
