package dispatch

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/sanity-io/litter"

	"github.com/lazharichir/blackjack/game"
	"github.com/lazharichir/blackjack/server/connection"
)

// EventEnvelope wraps an event with its name for client consumption
type EventEnvelope struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher forwards table events to the clients watching a session.
// Tables emit events for a single session, so every event fans out to
// that session's connections.
type Dispatcher struct {
	connMgr   *connection.Manager
	sessionID string
	logger    *log.Logger
	debug     bool
}

// NewDispatcher creates a dispatcher for one session
func NewDispatcher(connMgr *connection.Manager, sessionID string, logger *log.Logger, debug bool) *Dispatcher {
	return &Dispatcher{
		connMgr:   connMgr,
		sessionID: sessionID,
		logger:    logger,
		debug:     debug,
	}
}

// HandleEvent marshals a table event into an envelope and sends it to the
// session's clients. Register it with Table.OnEvent.
func (d *Dispatcher) HandleEvent(event game.Event) {
	if d.debug {
		litter.D(event)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		d.logger.Error("marshal event payload", "event", event.EventName(), "err", err)
		return
	}

	envelope := EventEnvelope{
		Name:    event.EventName(),
		Payload: payload,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		d.logger.Error("marshal event envelope", "event", event.EventName(), "err", err)
		return
	}

	d.connMgr.SendToSession(d.sessionID, data)
}

// SendSnapshot sends the full table view to the session's clients as a
// synthetic "table-state" envelope. Call it after each applied command so
// clients never have to reconstruct state from the event stream alone.
func (d *Dispatcher) SendSnapshot(view game.TableView) {
	payload, err := json.Marshal(view)
	if err != nil {
		d.logger.Error("marshal table view", "err", err)
		return
	}

	envelope := EventEnvelope{
		Name:    "table-state",
		Payload: payload,
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		d.logger.Error("marshal snapshot envelope", "err", err)
		return
	}

	d.connMgr.SendToSession(d.sessionID, data)
}

// SendSnapshotTo sends the full table view to one client, used when a
// client first attaches to a session
func (d *Dispatcher) SendSnapshotTo(clientID string, view game.TableView) {
	payload, err := json.Marshal(view)
	if err != nil {
		d.logger.Error("marshal table view", "err", err)
		return
	}

	envelope := EventEnvelope{Name: "table-state", Payload: payload}
	data, err := json.Marshal(envelope)
	if err != nil {
		d.logger.Error("marshal snapshot envelope", "err", err)
		return
	}

	d.connMgr.SendToClient(clientID, data)
}
