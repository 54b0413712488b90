package server

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const flashCookieName = "kp_flash"

// flashPayload переживает один цикл ответ-запрос: сообщения об ошибках и
// снимок формы для повторного показа.
type flashPayload struct {
	Messages []string          `json:"messages"`
	Form     map[string]string `json:"form"`
}

// flashCodec подписывает флеш-куку HMAC-SHA256, чтобы клиент не мог
// подменить содержимое. Формат: base64url(json) + "." + hex(hmac).
type flashCodec struct {
	secret []byte
}

func newFlashCodec(secret string) flashCodec {
	return flashCodec{secret: []byte(secret)}
}

func (c flashCodec) encode(payload flashPayload) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	body := base64.RawURLEncoding.EncodeToString(raw)

	return body + "." + c.sign(body), nil
}

func (c flashCodec) decode(value string) (flashPayload, bool) {
	body, signature, ok := splitCookieValue(value)
	if !ok {
		return flashPayload{}, false
	}

	if !hmac.Equal([]byte(c.sign(body)), []byte(signature)) {
		return flashPayload{}, false
	}

	raw, err := base64.RawURLEncoding.DecodeString(body)
	if err != nil {
		return flashPayload{}, false
	}

	var payload flashPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return flashPayload{}, false
	}

	return payload, true
}

func (c flashCodec) sign(body string) string {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(body))

	return hex.EncodeToString(mac.Sum(nil))
}

func splitCookieValue(value string) (body, signature string, ok bool) {
	i := strings.LastIndexByte(value, '.')
	if i < 0 {
		return "", "", false
	}

	return value[:i], value[i+1:], true
}

func (c flashCodec) set(w http.ResponseWriter, payload flashPayload) error {
	value, err := c.encode(payload)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return nil
}

func (c flashCodec) clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// pop читает и сразу гасит флеш-куку; второй показ тех же сообщений не нужен.
func (c flashCodec) pop(w http.ResponseWriter, r *http.Request) (flashPayload, bool) {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return flashPayload{}, false
	}

	c.clear(w)

	return c.decode(cookie.Value)
}
