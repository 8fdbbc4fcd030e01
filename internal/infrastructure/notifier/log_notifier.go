package notifier

import (
	"github.com/tu-usuario/gestion-pro/pkg/logger"
)

// LogNotifier implementa notify.Notifier sobre el logger estructurado.
// El dashboard consume estos eventos desde el stream de logs; si algún día se
// agrega un canal push hacia el SPA solo hay que sustituir esta implementación.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log.Component("notifier")}
}

func (n *LogNotifier) Success(title, message string) {
	n.log.Info().Str("title", title).Str("kind", "success").Msg(message)
}

func (n *LogNotifier) Warning(title, message string) {
	n.log.Warn().Str("title", title).Str("kind", "warning").Msg(message)
}

func (n *LogNotifier) Error(title, message string) {
	n.log.Error().Str("title", title).Str("kind", "error").Msg(message)
}
