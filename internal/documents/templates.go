package documents

import (
	"fmt"
	"os"
	"time"

	"github.com/patrickmn/go-cache"

	"kp_generator/internal/domain"
	"kp_generator/pkg/errcodes"
)

const templateCacheTTL = 5 * time.Minute

const (
	msgExcelTemplateMissing = "Шаблон Excel не найден. Обратитесь к администратору."
	msgWordTemplateMissing  = "Шаблон Word не найден. Обратитесь к администратору."
)

// TemplateStore читает байты шаблонов с диска. Это единственный блокирующий
// ввод-вывод на пути запроса, поэтому содержимое кэшируется на несколько
// минут; сами шаблоны по ходу работы не меняются.
type TemplateStore struct {
	excelPath string
	wordPath  string
	cache     *cache.Cache
}

func NewTemplateStore(excelPath, wordPath string) *TemplateStore {
	return &TemplateStore{
		excelPath: excelPath,
		wordPath:  wordPath,
		cache:     cache.New(templateCacheTTL, templateCacheTTL),
	}
}

func (s *TemplateStore) ExcelTemplate() ([]byte, error) {
	return s.load(s.excelPath, msgExcelTemplateMissing)
}

func (s *TemplateStore) WordTemplate() ([]byte, error) {
	return s.load(s.wordPath, msgWordTemplateMissing)
}

// Verify проверяет наличие обоих шаблонов; используется на старте процесса,
// чтобы проблема конфигурации попала в лог раньше первого запроса.
func (s *TemplateStore) Verify() error {
	for _, path := range []string{s.excelPath, s.wordPath} {
		if _, err := os.Stat(path); err != nil {
			return fmt.Errorf("template %s: %w", path, err)
		}
	}

	return nil
}

func (s *TemplateStore) load(path, missingMessage string) ([]byte, error) {
	if raw, ok := s.cache.Get(path); ok {
		return raw.([]byte), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.WrapError(
			fmt.Errorf("os.ReadFile %s: %w", path, err),
			errcodes.ConfigurationError,
			missingMessage,
		)
	}

	s.cache.Set(path, raw, cache.DefaultExpiration)

	return raw, nil
}
