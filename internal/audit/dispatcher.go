package audit

import "log"

type Event struct {
	UserID      uint
	Description string
	Module      string
}

// Sink é o que os use cases enxergam; o Dispatcher é a implementação
// de produção.
type Sink interface {
	Dispatch(ev Event)
}

// Dispatcher grava auditoria fora do caminho da requisição. Falha de
// escrita nunca chega ao chamador; fila cheia descarta o evento.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(ev.UserID, ev.Description, ev.Module); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
