// Package agent owns a single match: it decodes engine frames, runs the
// rule engine on each turn and submits the resulting placements.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/nstehr/indigo/board"
	"github.com/nstehr/indigo/history"
	"github.com/nstehr/indigo/ipc"
	"github.com/nstehr/indigo/model"
	"github.com/nstehr/indigo/rules"
	"github.com/nstehr/indigo/strategy"
)

// Agent owns the decision-making for a single match.
type Agent struct {
	Conn     *ipc.Connection
	Engine   *rules.Engine
	Strategy *strategy.Strategy
	Session  *strategy.Session
	History  history.Recorder

	catalog  *model.Catalog
	lastTurn int
	metrics  *instruments
}

func New(conn *ipc.Connection, engine *rules.Engine, st *strategy.Strategy, sess *strategy.Session, rec history.Recorder) *Agent {
	if rec == nil {
		rec = history.Nop{}
	}
	m, err := newInstruments()
	if err != nil {
		slog.Warn("metrics disabled", "error", err)
	}
	return &Agent{
		Conn:     conn,
		Engine:   engine,
		Strategy: st,
		Session:  sess,
		History:  rec,
		metrics:  m,
	}
}

// Register wires the frame handlers into the connection.
func (a *Agent) Register() {
	a.Conn.RegisterHandler(ipc.FrameConfig, a.HandleConfig)
	a.Conn.RegisterHandler(ipc.FrameTurn, a.HandleTurn)
	a.Conn.RegisterHandler(ipc.FrameAction, a.HandleAction)
	a.Conn.RegisterHandler(ipc.FrameEnd, a.HandleEnd)
}

// HandleConfig reads the unit table and opens the match.
func (a *Agent) HandleConfig(f ipc.Frame) error {
	msg, err := ipc.DecodeConfig(f.Raw)
	if err != nil {
		return err
	}
	cat, err := msg.Catalog()
	if err != nil {
		return err
	}
	a.catalog = cat

	units := make([]string, 0, cat.Len())
	for k := 0; k < cat.Len(); k++ {
		units = append(units, cat.Spec(model.UnitKind(k)).Shorthand)
	}
	slog.Info("match configured", "seed", a.Session.Seed, "units", units)

	if err := a.History.StartMatch(a.Session.Seed); err != nil {
		slog.Warn("history start failed", "error", err)
	}
	return nil
}

// HandleTurn plans and submits one turn. A record that cannot be decoded
// still gets an empty submission so the engine is never left waiting.
func (a *Agent) HandleTurn(f ipc.Frame) error {
	build, deploy, err := a.plan(f.Raw)
	if err != nil {
		slog.Error("turn planning aborted", "error", err)
		if serr := a.Conn.SubmitTurn(nil, nil); serr != nil {
			return errors.Join(err, serr)
		}
		return err
	}
	return a.Conn.SubmitTurn(build, deploy)
}

func (a *Agent) plan(raw []byte) ([]ipc.Command, []ipc.Command, error) {
	msg, err := ipc.DecodeTurn(raw)
	if err != nil {
		return nil, nil, err
	}
	gs, err := msg.GameState(a.catalog)
	if err != nil {
		return nil, nil, err
	}
	a.lastTurn = gs.Turn

	v := board.New(gs, a.catalog)
	wasCommitted := a.Session.Commitment.Committed()
	rep := a.Engine.Evaluate(rules.RuleEnv{View: v, Session: a.Session, Strategy: a.Strategy})

	ctx := context.Background()
	ruleNames := make([]string, 0, len(rep.Steps))
	for _, s := range rep.Steps {
		ruleNames = append(ruleNames, s.Rule)
		a.metrics.recordStep(ctx, s.Rule, s.Outcome)
	}
	total := rep.Total()

	slog.Info("turn planned",
		"turn", gs.Turn,
		"cores", gs.Stats[model.Self].Cores,
		"bits", gs.Stats[model.Self].Bits,
		"funnel", a.Session.Commitment.State(),
		"rules", ruleNames,
		"placed", total.Placed,
		"skipped", total.SkippedTotal(),
	)

	rec := history.TurnRecord{
		Number:  gs.Turn,
		Cores:   gs.Stats[model.Self].Cores,
		Bits:    gs.Stats[model.Self].Bits,
		Placed:  total.Placed,
		Skipped: total.SkippedTotal(),
		Rules:   ruleNames,
	}
	c := &a.Session.Commitment
	if !wasCommitted && c.Committed() {
		rec.Scores = a.Session.Scores
		if err := a.History.RecordCommit(c.State().String(), c.Spawn(), c.Turn()); err != nil {
			slog.Warn("history commit failed", "error", err)
		}
	}
	if err := a.History.RecordTurn(rec); err != nil {
		slog.Warn("history turn failed", "turn", gs.Turn, "error", err)
	}

	build, deploy := v.Placements()
	b, err := a.commands(build)
	if err != nil {
		return nil, nil, err
	}
	d, err := a.commands(deploy)
	if err != nil {
		return nil, nil, err
	}
	return b, d, nil
}

func (a *Agent) commands(ps []board.Placement) ([]ipc.Command, error) {
	out := make([]ipc.Command, 0, len(ps))
	for _, p := range ps {
		sh := a.catalog.Spec(p.Kind).Shorthand
		if sh == "" {
			return nil, fmt.Errorf("no shorthand for %s", p.Kind)
		}
		out = append(out, ipc.Command{Shorthand: sh, X: p.Location.X, Y: p.Location.Y})
	}
	return out, nil
}

// HandleAction records opponent breaches. Action frames never place units.
func (a *Agent) HandleAction(f ipc.Frame) error {
	breaches, bad, err := ParseBreaches(f.Raw)
	if err != nil {
		return err
	}
	if bad > 0 {
		slog.Warn("malformed breach events skipped", "count", bad)
	}

	ctx := context.Background()
	for _, b := range breaches {
		a.metrics.recordBreach(ctx, b.Attacker.String())
		if !a.Session.Tracker.Record(b) {
			continue
		}
		slog.Info("breach recorded", "location", b.Location, "entries", a.Session.Tracker.Len())
		if err := a.History.RecordBreach(a.lastTurn, b.Location); err != nil {
			slog.Warn("history breach failed", "error", err)
		}
	}
	return nil
}

// HandleEnd logs the result and closes out the match record.
func (a *Agent) HandleEnd(f ipc.Frame) error {
	s := parseEnd(f.Raw)
	slog.Info("match ended",
		"turn", s.Turn,
		"winner", s.Winner,
		"won", s.Winner == ownerSelf,
		"health", s.Health[model.Self],
		"opponentHealth", s.Health[model.Opponent],
		"funnel", a.Session.Commitment.State(),
		"breaches", a.Session.Tracker.Len(),
		"seed", a.Session.Seed,
	)
	if err := a.History.EndMatch(s.Turn, s.Winner); err != nil {
		slog.Warn("history end failed", "error", err)
	}
	return nil
}
