package ports

// Notifier puerto del colaborador de notificaciones. El encolado es
// fire-and-forget: nunca bloquea la petición primaria y los fallos de envío
// se loggean en el worker, jamás se propagan al caller. Por eso las firmas no
// devuelven error.
type Notifier interface {
	EnqueueEmail(to, subject, body string)
	EnqueuePush(principalID, message string)
}

// NopNotifier descarta todas las notificaciones. Útil en tests y en entornos
// sin SMTP configurado.
type NopNotifier struct{}

func (NopNotifier) EnqueueEmail(to, subject, body string) {}
func (NopNotifier) EnqueuePush(principalID, message string) {}
