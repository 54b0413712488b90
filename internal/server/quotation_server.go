package server

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"

	"kp_generator/internal/domain"
	"kp_generator/internal/domain/entity"
	"kp_generator/internal/domain/service/pricing"
	"kp_generator/pkg/contextx"
	"kp_generator/pkg/errcodes"
	"kp_generator/pkg/logx"
)

//nolint:gochecknoglobals
var logger = contextx.LoggerFromContextOrDefault

const unexpectedErrorMessage = "Произошла непредвиденная ошибка. Попробуйте еще раз."

type quotationService interface {
	Generate(context.Context, entity.QuotationInput) (entity.OutputArtifactSet, error)
	Constants() pricing.Constants
}

type QuotationServer struct {
	quotationService quotationService
	renderer         *Renderer
	flash            flashCodec
	staticDir        string
}

func NewQuotationServer(
	quotationService quotationService,
	renderer *Renderer,
	secretKey string,
	staticDir string,
) QuotationServer {
	return QuotationServer{
		quotationService: quotationService,
		renderer:         renderer,
		flash:            newFlashCodec(secretKey),
		staticDir:        staticDir,
	}
}

func (s QuotationServer) getIndex(w http.ResponseWriter, r *http.Request) error {
	payload, ok := s.flash.pop(w, r)
	if !ok {
		return s.renderer.Render(w, http.StatusOK, pageIndex, viewData{})
	}

	return s.renderer.Render(w, http.StatusOK, pageIndex, viewData{
		Messages: payload.Messages,
		FormData: payload.Form,
	})
}

func (s QuotationServer) getFavicon(w http.ResponseWriter, r *http.Request) error {
	http.ServeFile(w, r, filepath.Join(s.staticDir, "favicon.ico"))

	return nil
}

func (s QuotationServer) postGenerate(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("r.ParseForm: %w", err)
	}

	form := r.PostForm
	constants := s.quotationService.Constants()

	if messages := ValidateForm(form, constants.EnforceMinDealLength); len(messages) > 0 {
		proposalFailures.WithLabelValues("validation").Inc()

		return s.renderFailure(w, r, form, messages)
	}

	input, err := newQuotationInput(form, constants.DefaultDealLengthDays)
	if err != nil {
		logger(ctx).Error("newQuotationInput", logx.Error(err))
		proposalFailures.WithLabelValues("conversion").Inc()

		return s.renderFailure(w, r, form, []string{unexpectedErrorMessage})
	}

	artifacts, err := s.quotationService.Generate(ctx, input)
	if err != nil {
		logger(ctx).Error("quotationService.Generate", logx.Error(err))
		proposalFailures.WithLabelValues(failureReason(err)).Inc()

		return s.renderFailure(w, r, form, []string{userFacingMessage(err)})
	}

	proposalsGenerated.Inc()

	// Флеш от прошлой неудачной попытки больше не актуален.
	s.flash.clear(w)

	name := artifacts.FilePrefix + ".zip"

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", mime.FormatMediaType(
		"attachment",
		map[string]string{"filename": name},
	))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifacts.Archive)))

	_, err = w.Write(artifacts.Archive)

	return err
}

// renderFailure показывает форму заново с сообщениями об ошибках. Ответ
// всегда 200: ошибка пользовательская, а не протокольная. Флеш-кука хранит
// тот же снимок, чтобы обновление страницы не теряло введённое.
func (s QuotationServer) renderFailure(
	w http.ResponseWriter,
	r *http.Request,
	form url.Values,
	messages []string,
) error {
	snapshot := formSnapshot(form)

	if err := s.flash.set(w, flashPayload{Messages: messages, Form: snapshot}); err != nil {
		logger(r.Context()).Error("flash.set", logx.Error(err))
	}

	return s.renderer.Render(w, http.StatusOK, pageIndex, viewData{
		Messages: messages,
		FormData: snapshot,
	})
}

// userFacingMessage переводит доменную ошибку в текст для пользователя.
// Наружу уходят только заранее написанные сообщения: внутренние детали
// остаются в логах.
func userFacingMessage(err error) string {
	code, ok := domain.GetCode(err)
	if !ok {
		return unexpectedErrorMessage
	}

	switch code {
	case errcodes.ConfigurationError, errcodes.TemplateProcessingError, errcodes.ValidationError:
		if message, ok := domain.UserMessage(err); ok {
			return message
		}

		return unexpectedErrorMessage
	default:
		return unexpectedErrorMessage
	}
}

func failureReason(err error) string {
	if code, ok := domain.GetCode(err); ok {
		return string(code)
	}

	return "unexpected"
}
