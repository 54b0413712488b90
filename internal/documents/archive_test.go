package documents_test

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"kp_generator/internal/documents"
)

func TestBuildArchive(t *testing.T) {
	rq := require.New(t)

	excel := []byte("excel-bytes")
	word := []byte("word-bytes")

	raw, err := documents.BuildArchive("КП_Ромашка_20260828_0905", excel, word)
	rq.NoError(err)

	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	rq.NoError(err)

	rq.Len(zr.File, 2)
	rq.Equal("КП_Ромашка_20260828_0905.xlsx", zr.File[0].Name)
	rq.Equal("КП_Ромашка_20260828_0905.docx", zr.File[1].Name)

	for i, want := range [][]byte{excel, word} {
		f, err := zr.File[i].Open()
		rq.NoError(err)

		got, err := io.ReadAll(f)
		rq.NoError(err)
		rq.NoError(f.Close())

		rq.Equal(want, got)
	}
}
