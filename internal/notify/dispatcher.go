package notify

import "log"

// Sink persists notifications. Satisfied by *Store.
type Sink interface {
	Push(userID uint, title, message string) error
	ActiveAdminIDs() ([]uint, error)
}

type message struct {
	userID    uint
	broadcast bool
	title     string
	body      string
}

// Dispatcher delivers notifications off the request path. Delivery is
// best-effort: a full queue or a failed push never reaches the caller.
type Dispatcher struct {
	sink  Sink
	queue chan message
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan message, 256),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for m := range d.queue {
		if m.broadcast {
			ids, err := d.sink.ActiveAdminIDs()
			if err != nil {
				log.Println("notify: admin lookup error:", err)
				continue
			}
			for _, id := range ids {
				if err := d.sink.Push(id, m.title, m.body); err != nil {
					log.Println("notify error:", err)
				}
			}
			continue
		}

		if err := d.sink.Push(m.userID, m.title, m.body); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) enqueue(m message) {
	select {
	case d.queue <- m:
	default:
		log.Println("notify queue full, dropping notification")
	}
}

func (d *Dispatcher) Notify(userID uint, title, body string) {
	d.enqueue(message{userID: userID, title: title, body: body})
}

// NotifyAdmins fans out to every active admin.
func (d *Dispatcher) NotifyAdmins(title, body string) {
	d.enqueue(message{broadcast: true, title: title, body: body})
}
