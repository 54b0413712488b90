package server

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
)

const (
	pageIndex         = "index.html"
	pageNotFound      = "404.html"
	pageInternalError = "500.html"

	contentTypeHTML = "text/html; charset=utf-8"
)

// viewData — всё, что видят страницы: сообщения об ошибках и прошлые
// значения формы для повторного заполнения.
type viewData struct {
	Messages []string
	FormData map[string]string
}

// Renderer держит разобранные страницы; парсинг выполняется один раз на
// старте, ошибка в разметке роняет процесс сразу, а не на первом запросе.
type Renderer struct {
	pages *template.Template
}

func NewRenderer(dir string) (*Renderer, error) {
	pages, err := template.ParseFiles(
		filepath.Join(dir, pageIndex),
		filepath.Join(dir, pageNotFound),
		filepath.Join(dir, pageInternalError),
	)
	if err != nil {
		return nil, fmt.Errorf("template.ParseFiles: %w", err)
	}

	return &Renderer{pages: pages}, nil
}

// Render пишет страницу целиком через буфер: при ошибке исполнения шаблона
// клиент не получит половину страницы с кодом 200.
func (rd *Renderer) Render(w http.ResponseWriter, status int, page string, data viewData) error {
	var buf bytes.Buffer

	if err := rd.pages.ExecuteTemplate(&buf, page, data); err != nil {
		return fmt.Errorf("pages.ExecuteTemplate %s: %w", page, err)
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)

	_, err := buf.WriteTo(w)

	return err
}
