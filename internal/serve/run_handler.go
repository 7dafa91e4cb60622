package serve

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"robotgrid/internal/coordinator"
	"robotgrid/internal/grid"
	"robotgrid/internal/parser"
	"robotgrid/internal/robot"
)

type position struct {
	X       int           `json:"x"`
	Y       int           `json:"y"`
	Heading robot.Heading `json:"heading"`
}

func toPosition(p robot.Position) position {
	return position{X: p.X, Y: p.Y, Heading: p.Heading}
}

type result struct {
	Scenario int         `json:"scenario"`
	Status   grid.Status `json:"status"`
	position
	Steps int    `json:"steps"`
	Line  string `json:"line"`
}

type runResponse struct {
	Results []result `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func toResults(results coordinator.Results) []result {
	out := make([]result, 0, len(results))
	for _, r := range results {
		out = append(out, result{
			Scenario: r.Number,
			Status:   r.Outcome.Status,
			position: toPosition(r.Outcome.Position),
			Steps:    r.Outcome.Steps,
			Line:     r.String(),
		})
	}
	return out
}

// RunHandler runs the instruction file in the request body and answers with
// one JSON result per scenario.
func (s *Server) RunHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxInstructionBytes))
	if err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: err.Error()})
		return
	}

	results, err := coordinator.New(s.logger).RunLines(coordinator.SplitLines(string(body)))
	if errors.Is(err, parser.ErrEmptyInput) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if err != nil {
		s.logger.Infow("rejected instruction set", "error", err)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, runResponse{Results: toResults(results)})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
