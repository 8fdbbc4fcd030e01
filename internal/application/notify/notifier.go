// Package notify define el puerto de notificaciones hacia el usuario.
// Los coordinadores lo invocan para reportar éxitos y fallos; la presentación
// concreta (log estructurado, toasts del dashboard) vive en infraestructura.
package notify

// Notifier puerto de salida para notificaciones visibles al usuario.
type Notifier interface {
	Success(title, message string)
	Warning(title, message string)
	Error(title, message string)
}

// NopNotifier descarta todas las notificaciones; útil en tests.
type NopNotifier struct{}

func (NopNotifier) Success(title, message string) {}
func (NopNotifier) Warning(title, message string) {}
func (NopNotifier) Error(title, message string)   {}
