package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"kp_generator/pkg/logx"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Get("/", s.handler(s.getIndex))
	r.Get("/favicon.ico", s.handler(s.getFavicon))
	r.Post("/generate", s.handler(s.postGenerate))

	r.NotFound(s.notFound)
}

// handler превращает обработчик с ошибкой в http.HandlerFunc. Ошибки здесь
// только инфраструктурные (шаблон страницы, запись ответа): пользовательские
// сценарии обработчики закрывают сами мягким повторным показом формы.
func (s Server) handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			logger(r.Context()).Error("handler", logx.Error(err))
			s.InternalErrorHandler()(w, r)
		}
	}
}

func (s Server) notFound(w http.ResponseWriter, r *http.Request) {
	if err := s.renderer.Render(w, http.StatusNotFound, pageNotFound, viewData{}); err != nil {
		logger(r.Context()).Error("renderer.Render", logx.Error(err))
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
	}
}

// InternalErrorHandler отдаёт страницу 500; его же использует middleware
// восстановления после паники.
func (s Server) InternalErrorHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.renderer.Render(w, http.StatusInternalServerError, pageInternalError, viewData{}); err != nil {
			logger(r.Context()).Error("renderer.Render", logx.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}
