package errcodes

import "git.appkode.ru/pub/go/failure"

// Ошибки генерации коммерческого предложения.
const (
	ValidationError         failure.ErrorCode = "ValidationError"         // Заявка не прошла проверку
	ConfigurationError      failure.ErrorCode = "ConfigurationError"      // Шаблон или константы расчёта сломаны на стороне сервера
	TemplateProcessingError failure.ErrorCode = "TemplateProcessingError" // Шаблон есть, но заполнить его не удалось
	DomainError             failure.ErrorCode = "DomainError"             // Невозможный расчёт (например, нулевой общий вес)
)
