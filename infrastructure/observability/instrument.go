package observability

import (
	"context"
	"encoding/json"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/felixgeelhaar/pdftool/domain/tool"
)

type callIDKey struct{}

// ContextWithCallID attaches a per-invocation identifier to ctx.
func ContextWithCallID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, callIDKey{}, id)
}

// CallIDFromContext returns the identifier set by ContextWithCallID.
func CallIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(callIDKey{}).(string)
	return id
}

// Instruments holds the metric instruments recorded for every tool call.
type Instruments struct {
	tracer     trace.Tracer
	executions metric.Int64Counter
	errors     metric.Int64Counter
	duration   metric.Float64Histogram
}

// NewInstruments creates tool call instruments from tracer and meter.
func NewInstruments(tracer trace.Tracer, meter metric.Meter) (*Instruments, error) {
	executions, err := meter.Int64Counter("pdftool.tool.executions_total",
		metric.WithDescription("Total number of tool executions"),
		metric.WithUnit("{execution}"),
	)
	if err != nil {
		return nil, err
	}
	errs, err := meter.Int64Counter("pdftool.tool.errors_total",
		metric.WithDescription("Total number of tool execution errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}
	duration, err := meter.Float64Histogram("pdftool.tool.duration_seconds",
		metric.WithDescription("Duration of tool executions"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	return &Instruments{
		tracer:     tracer,
		executions: executions,
		errors:     errs,
		duration:   duration,
	}, nil
}

// Instruments creates tool call instruments from the provider.
func (p *Provider) Instruments() (*Instruments, error) {
	return NewInstruments(p.tracer, p.meter)
}

// Wrap returns t with every Execute traced and measured.
func (in *Instruments) Wrap(t tool.Tool) tool.Tool {
	return &instrumentedTool{Tool: t, in: in}
}

type instrumentedTool struct {
	tool.Tool
	in *Instruments
}

func (t *instrumentedTool) Execute(ctx context.Context, input json.RawMessage) (tool.Result, error) {
	ann := t.Annotations()
	attrs := []attribute.KeyValue{
		attribute.String("tool.name", t.Name()),
	}

	spanAttrs := append(attrs,
		attribute.Bool("tool.read_only", ann.ReadOnly),
		attribute.Bool("tool.idempotent", ann.Idempotent),
	)
	if id := CallIDFromContext(ctx); id != "" {
		spanAttrs = append(spanAttrs, attribute.String("tool.call_id", id))
	}

	ctx, span := t.in.tracer.Start(ctx, "tool.execute",
		trace.WithAttributes(spanAttrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()

	start := time.Now()
	result, err := t.Tool.Execute(ctx, input)
	elapsed := time.Since(start).Seconds()

	status := "success"
	if err != nil {
		status = "error"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		t.in.errors.Add(ctx, 1, metric.WithAttributes(attrs...))
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.SetAttributes(attribute.String("tool.status", status))

	attrs = append(attrs, attribute.String("status", status))
	t.in.executions.Add(ctx, 1, metric.WithAttributes(attrs...))
	t.in.duration.Record(ctx, elapsed, metric.WithAttributes(attrs...))

	return result, err
}
