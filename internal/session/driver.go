package session

import (
	"go.uber.org/zap"

	"github.com/abhisek/daycheck/internal/questionset"
)

// Driver owns the current State of one interactive run and logs every
// transition. Renderers talk to the Driver; State stays a pure value.
type Driver struct {
	state  State
	logger *zap.Logger
}

// NewDriver starts a new attempt over set. A nil logger disables logging.
func NewDriver(set *questionset.Set, logger *zap.Logger) *Driver {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := &Driver{state: New(set), logger: logger}
	d.logger.Info("attempt started",
		zap.String("attempt", d.state.AttemptID()),
		zap.Int("questions", set.Len()),
	)
	return d
}

// State returns the current state.
func (d *Driver) State() State { return d.state }

// Dispatch applies ev. On error the state is unchanged and the error is
// returned for the renderer to present.
func (d *Driver) Dispatch(ev Event) error {
	prev := d.state
	next, err := Apply(prev, ev)

	fields := []zap.Field{
		zap.String("attempt", prev.AttemptID()),
		zap.String("event", ev.Name()),
		zap.Int("index", prev.Index()),
		zap.Stringer("phase", prev.Phase()),
	}
	if err != nil {
		d.logger.Info("event rejected", append(fields, zap.Error(err))...)
		return err
	}
	d.state = next

	switch {
	case !prev.Finished() && next.Finished():
		d.logger.Info("attempt finished", append(fields, zap.Int("answered", next.AnsweredCount()))...)
	case next.AttemptID() != prev.AttemptID():
		d.logger.Info("attempt restarted", append(fields, zap.String("new_attempt", next.AttemptID()))...)
	default:
		d.logger.Debug("event applied", append(fields, zap.Int("progress", next.Progress()))...)
	}
	return nil
}
