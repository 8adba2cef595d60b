package agent

import (
	"context"

	"github.com/nstehr/indigo/board"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/nstehr/indigo/agent"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

type instruments struct {
	placements metric.Int64Counter
	skips      metric.Int64Counter
	breaches   metric.Int64Counter
}

func newInstruments() (*instruments, error) {
	m := meter()
	placements, err := m.Int64Counter("indigo.planner.placements",
		metric.WithDescription("Units queued by the planner"),
		metric.WithUnit("{unit}"))
	if err != nil {
		return nil, err
	}
	skips, err := m.Int64Counter("indigo.planner.skips",
		metric.WithDescription("Placement attempts skipped, by reason"),
		metric.WithUnit("{attempt}"))
	if err != nil {
		return nil, err
	}
	breaches, err := m.Int64Counter("indigo.breaches",
		metric.WithDescription("Breach events observed, by attacker"),
		metric.WithUnit("{breach}"))
	if err != nil {
		return nil, err
	}
	return &instruments{placements: placements, skips: skips, breaches: breaches}, nil
}

func (i *instruments) recordStep(ctx context.Context, rule string, out board.Outcome) {
	if i == nil {
		return
	}
	i.placements.Add(ctx, int64(out.Placed), metric.WithAttributes(attribute.String("rule", rule)))
	for reason, n := range out.Skipped {
		i.skips.Add(ctx, int64(n), metric.WithAttributes(
			attribute.String("rule", rule),
			attribute.String("reason", reason.String()),
		))
	}
}

func (i *instruments) recordBreach(ctx context.Context, attacker string) {
	if i == nil {
		return
	}
	i.breaches.Add(ctx, 1, metric.WithAttributes(attribute.String("attacker", attacker)))
}
