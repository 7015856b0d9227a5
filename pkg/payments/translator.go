package payments

import (
	"go.uber.org/zap"

	"github.com/arnac-io/chatpay/pkg/i18n"
)

// Translator converts invoices between the client-facing and the remote schema.
// Photos are attached by reference through the file manager.
type Translator struct {
	files  fileManager
	lang   string
	logger *zap.Logger
}

func NewTranslator(files fileManager, lang string, logger *zap.Logger) *Translator {
	return &Translator{
		files:  files,
		lang:   lang,
		logger: logger,
	}
}

func (t *Translator) totalLabel() string {
	return i18n.T(t.lang, i18n.C{MessageID: i18n.TotalLabel})
}
