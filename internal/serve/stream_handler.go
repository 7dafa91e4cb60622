package serve

import (
	"net/http"

	"github.com/gorilla/websocket"

	"robotgrid/internal/coordinator"
	"robotgrid/internal/grid"
	"robotgrid/internal/robot"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
}

const (
	eventStart   = "start"
	eventStep    = "step"
	eventOutcome = "outcome"
	eventDone    = "done"
	eventError   = "error"
)

type event struct {
	Type        string       `json:"type"`
	Scenario    int          `json:"scenario,omitempty"`
	Instruction string       `json:"instruction,omitempty"`
	Cursor      int          `json:"cursor,omitempty"`
	Position    *position    `json:"position,omitempty"`
	Status      *grid.Status `json:"status,omitempty"`
	Line        string       `json:"line,omitempty"`
	Error       string       `json:"error,omitempty"`
}

// eventWriter streams scenario progress to one websocket client. After the
// first failed write it drops everything else.
type eventWriter struct {
	conn     *websocket.Conn
	scenario int
	err      error
}

func (ew *eventWriter) send(e event) {
	if ew.err != nil {
		return
	}
	ew.err = ew.conn.WriteJSON(e)
}

func (ew *eventWriter) OnStart(s *grid.Scenario) {
	ew.scenario++
	p := toPosition(s.Current())
	ew.send(event{Type: eventStart, Scenario: ew.scenario, Position: &p, Line: s.String()})
}

func (ew *eventWriter) OnStep(s *grid.Scenario, in robot.Instruction) {
	p := toPosition(s.Current())
	ew.send(event{Type: eventStep, Scenario: ew.scenario, Instruction: in.String(), Cursor: s.Cursor(), Position: &p})
}

func (ew *eventWriter) OnOutcome(s *grid.Scenario, o grid.Outcome) {
	p := toPosition(o.Position)
	status := o.Status
	ew.send(event{Type: eventOutcome, Scenario: ew.scenario, Position: &p, Status: &status, Line: o.String()})
}

// StreamHandler upgrades to a websocket. Every text message the client sends
// is run as an instruction file and answered with start, step and outcome
// events per scenario followed by a done event, or a single error event.
func (s *Server) StreamHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Infow("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxInstructionBytes)

	coord := coordinator.New(s.logger)
	for {
		kind, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Infow("websocket read failed", "error", err)
			}
			return
		}
		if kind != websocket.TextMessage {
			continue
		}

		ew := &eventWriter{conn: conn}
		set, err := coord.Parse(coordinator.SplitLines(string(msg)))
		if err != nil {
			ew.send(event{Type: eventError, Error: err.Error()})
		} else {
			coord.Run(set, ew)
			ew.send(event{Type: eventDone})
		}
		if ew.err != nil {
			s.logger.Infow("websocket write failed", "error", ew.err)
			return
		}
	}
}
