package coordinator

import (
	"go.uber.org/zap"

	"robotgrid/internal/grid"
	"robotgrid/internal/robot"
)

type stepLogger struct {
	logger *zap.SugaredLogger
}

func (sl *stepLogger) OnStart(s *grid.Scenario) {
	sl.logger.Debugw("scenario started",
		"start", s.Start().String(),
		"journey", s.Journey().String(),
		"expected", s.Expected().String(),
	)
}

func (sl *stepLogger) OnStep(s *grid.Scenario, in robot.Instruction) {
	sl.logger.Debugw("step",
		"instruction", in.String(),
		"cursor", s.Cursor(),
		"position", s.Current().String(),
	)
}

func (sl *stepLogger) OnOutcome(s *grid.Scenario, o grid.Outcome) {
	sl.logger.Debugw("scenario finished",
		"status", o.Status.String(),
		"position", o.Position.String(),
		"steps", o.Steps,
	)
}
