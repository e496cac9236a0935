package notify

import (
	"sync"

	"github.com/tu-usuario/sastre-api/internal/application/ports"
	"github.com/tu-usuario/sastre-api/pkg/logger"
)

// Mailer envía un correo ya compuesto. La implementación real usa SMTP.
type Mailer interface {
	Send(to, subject, body string) error
}

// PushSender entrega un push por principal. La implementación real llama al
// gateway HTTP.
type PushSender interface {
	Send(principalID, message string) error
}

type job struct {
	kind        string // email, push
	to          string
	subject     string
	body        string
	principalID string
	message     string
}

var _ ports.Notifier = (*Dispatcher)(nil)

// Dispatcher cola de notificaciones fire-and-forget: un canal con buffer y un
// worker. Encolar nunca bloquea la ruta del pedido; con la cola llena el
// mensaje se descarta y se loggea. Los fallos de entrega solo se loggean,
// nunca alteran la respuesta HTTP que ya salió.
type Dispatcher struct {
	mailer Mailer
	push   PushSender
	log    *logger.Logger

	jobs chan job
	wg   sync.WaitGroup
	once sync.Once
}

// NewDispatcher construye la cola. buffer <= 0 usa 256.
func NewDispatcher(mailer Mailer, push PushSender, buffer int, log *logger.Logger) *Dispatcher {
	if buffer <= 0 {
		buffer = 256
	}
	return &Dispatcher{
		mailer: mailer,
		push:   push,
		log:    log,
		jobs:   make(chan job, buffer),
	}
}

// Start lanza el worker. Llamar una sola vez.
func (d *Dispatcher) Start() {
	d.wg.Add(1)
	go d.run()
}

// Close cierra la cola y espera a que el worker drene lo pendiente.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.jobs) })
	d.wg.Wait()
}

// EnqueueEmail encola un correo sin bloquear.
func (d *Dispatcher) EnqueueEmail(to, subject, body string) {
	d.enqueue(job{kind: "email", to: to, subject: subject, body: body})
}

// EnqueuePush encola un push sin bloquear.
func (d *Dispatcher) EnqueuePush(principalID, message string) {
	d.enqueue(job{kind: "push", principalID: principalID, message: message})
}

func (d *Dispatcher) enqueue(j job) {
	defer func() {
		// Encolar sobre una cola cerrada durante el shutdown no debe tumbar
		// el proceso.
		if r := recover(); r != nil {
			d.log.Warn().Msg("notificación descartada: cola cerrada")
		}
	}()
	select {
	case d.jobs <- j:
	default:
		d.log.Warn().Str("kind", j.kind).Msg("notificación descartada: cola llena")
	}
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for j := range d.jobs {
		switch j.kind {
		case "email":
			if err := d.mailer.Send(j.to, j.subject, j.body); err != nil {
				d.log.Error().Err(err).Str("to", j.to).Msg("envío de email fallido")
			}
		case "push":
			if err := d.push.Send(j.principalID, j.message); err != nil {
				d.log.Error().Err(err).Str("principal", j.principalID).Msg("envío de push fallido")
			}
		}
	}
}
