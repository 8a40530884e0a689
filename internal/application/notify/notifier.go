// Package notify implementa el canal lateral de notificaciones.
//
// Es fire-and-forget: los casos de uso lo disparan DESPUÉS de una mutación
// exitosa, nunca esperan el resultado y un fallo del canal jamás afecta la
// respuesta HTTP.
package notify

import (
	"context"
	"time"

	"github.com/jcastro/licita-pro/pkg/logger"
)

// Tipos de evento que emite la plataforma.
const (
	EventTenderCreated   = "tender.created"
	EventTenderUpdated   = "tender.updated"
	EventBidCreated      = "bid.created"
	EventBidStatusChange = "bid.status_changed"
	EventBidReviewed     = "bid.reviewed"
)

// Event lo que se despacha al canal de notificaciones.
type Event struct {
	Type       string
	ResourceID string
	ActorID    string // User.ID del que ejecutó la mutación
	Message    string
	At         time.Time
}

// Notifier puerto de despacho. Implementaciones reales pueden publicar a un
// broker o enviar correo; aquí se entrega la basada en log.
type Notifier interface {
	Notify(ctx context.Context, e Event)
}

// Dispatch despacha en una goroutine propia con timeout corto y recover:
// el request que originó el evento no espera ni se entera de fallos.
func Dispatch(n Notifier, e Event) {
	if n == nil {
		return
	}
	if e.At.IsZero() {
		e.At = time.Now()
	}
	go func() {
		defer func() { _ = recover() }()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		n.Notify(ctx, e)
	}()
}

// LogNotifier implementación sobre el logger estructurado.
type LogNotifier struct {
	log *logger.Logger
}

// NewLogNotifier construye el notificador basado en log.
func NewLogNotifier(log *logger.Logger) *LogNotifier {
	return &LogNotifier{log: log.Component("notify")}
}

// Notify registra el evento.
func (n *LogNotifier) Notify(_ context.Context, e Event) {
	n.log.Info().
		Str("event", e.Type).
		Str("resource_id", e.ResourceID).
		Str("actor_id", e.ActorID).
		Time("at", e.At).
		Msg(e.Message)
}
