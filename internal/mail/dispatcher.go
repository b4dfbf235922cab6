package mail

import (
	"sync"

	"go.uber.org/zap"
)

// Dispatcher decouples mail delivery from the request path. Enqueue never
// blocks: a full queue drops the message with an error log. Delivery
// failures stay on the worker's side and are never surfaced to requests.
type Dispatcher struct {
	sender Sender
	log    *zap.Logger
	ch     chan Message

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(sender Sender, log *zap.Logger, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &Dispatcher{
		sender: sender,
		log:    log,
		ch:     make(chan Message, queueSize),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for msg := range d.ch {
		if err := d.sender.Send(msg); err != nil {
			d.log.Error("mail send failed",
				zap.String("to", msg.To),
				zap.String("subject", msg.Subject),
				zap.Error(err),
			)
			continue
		}
		d.log.Info("mail sent",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
	}
}

// Enqueue hands the message to the background worker.
func (d *Dispatcher) Enqueue(msg Message) {
	select {
	case d.ch <- msg:
	default:
		d.log.Error("mail queue full, message dropped",
			zap.String("to", msg.To),
			zap.String("subject", msg.Subject),
		)
	}
}

// Close stops accepting messages and waits for the worker to drain.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() { close(d.ch) })
	<-d.done
}
