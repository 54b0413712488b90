package value

import (
	"regexp"
	"strings"
	"time"
)

const maxSafeFileNameLen = 50

//nolint:gochecknoglobals
var (
	disallowedChars = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	separatorRuns   = regexp.MustCompile(`[-\s]+`)
)

// SafeFileName превращает название компании в безопасный фрагмент имени
// файла: выбрасывает всё, кроме букв, цифр, подчёркивания, пробелов и
// дефисов, схлопывает разделители в "_" и обрезает до 50 символов.
// Никогда не падает: для пустого входа возвращает пустую строку.
func SafeFileName(name string) string {
	safe := disallowedChars.ReplaceAllString(name, "")
	safe = strings.TrimSpace(safe)
	safe = separatorRuns.ReplaceAllString(safe, "_")

	runes := []rune(safe)
	if len(runes) > maxSafeFileNameLen {
		runes = runes[:maxSafeFileNameLen]
	}

	return string(runes)
}

// ArtifactPrefix — общее имя для файлов одного предложения:
// КП_<компания>_<ГГГГММДД_ЧЧММ>.
func ArtifactPrefix(company string, at time.Time) string {
	return "КП_" + SafeFileName(company) + "_" + at.Format("20060102_1504")
}
