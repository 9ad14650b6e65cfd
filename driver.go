package toolwire

import (
	"context"
	"fmt"
	"log/slog"
)

// Invocation names one tool call within a Stage. Arguments come from Args,
// or from BuildArgs when set: BuildArgs receives every outcome collected so
// far, which is how a value produced on one server is threaded into a call
// against another. Threading is caller logic; the protocol keeps no state
// across calls.
type Invocation struct {
	Tool      string
	Args      map[string]any
	BuildArgs func(prior Outcomes) map[string]any
}

// Stage is one connect → discover → call* → disconnect sequence against a
// single server.
type Stage struct {
	Server      ToolServer
	Invocations []Invocation
}

// Plan is an ordered list of stages. With FailFast set, Run stops at the
// first failed tool result instead of continuing.
type Plan struct {
	Stages   []Stage
	FailFast bool
}

// Outcome records one completed invocation.
type Outcome struct {
	Server string
	Tool   string
	Result ToolResult
}

// Outcomes accumulates results in execution order.
type Outcomes []Outcome

// Result returns the most recent result produced by the named tool.
func (o Outcomes) Result(tool string) (ToolResult, bool) {
	for i := len(o) - 1; i >= 0; i-- {
		if o[i].Tool == tool {
			return o[i].Result, true
		}
	}

	return ToolResult{}, false
}

// Payload returns the most recent successful payload of the named tool as a
// map, or false when the tool has not succeeded or its payload is not a map.
func (o Outcomes) Payload(tool string) (map[string]any, bool) {
	result, ok := o.Result(tool)
	if !ok || !result.Success {
		return nil, false
	}

	payload, ok := result.Result.(map[string]any)

	return payload, ok
}

// Driver sequences a Plan through one client: connect to each stage's
// server, discover its tools, issue the stage's calls, disconnect, move on.
// The driver imposes no invariants beyond the client's own; it is caller
// logic packaged for reuse.
type Driver struct {
	client Client
	log    *slog.Logger
}

// NewDriver creates a driver around client. The client must be
// disconnected; Run manages its connection per stage.
func NewDriver(client Client, opts ...Option) *Driver {
	options := applyOptions(opts)

	log := options.Logger
	if log == nil {
		log = NopLogger()
	}

	return &Driver{
		client: client,
		log:    log.With("component", "driver"),
	}
}

// Run executes the plan and returns every outcome collected, in execution
// order. Tool-level failures are recorded in-band and do not stop the run
// unless the plan sets FailFast. A returned error means the run itself
// broke off: a connection-state violation, a cancelled context, or a
// FailFast stop; outcomes collected before the break are still returned.
func (d *Driver) Run(ctx context.Context, plan Plan) (Outcomes, error) {
	var outcomes Outcomes

	for _, stage := range plan.Stages {
		stageOutcomes, err := d.runStage(ctx, stage, outcomes, plan.FailFast)
		outcomes = append(outcomes, stageOutcomes...)

		if err != nil {
			return outcomes, err
		}
	}

	return outcomes, nil
}

// runStage connects, runs the stage's invocations, and always disconnects.
func (d *Driver) runStage(ctx context.Context, stage Stage, prior Outcomes, failFast bool) (Outcomes, error) {
	if err := d.client.Connect(stage.Server); err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}
	defer d.client.Disconnect()

	info, err := d.client.ServerInfo()
	if err != nil {
		return nil, err
	}

	tools, err := d.client.DiscoverTools()
	if err != nil {
		return nil, err
	}

	d.log.Debug("Stage started", "server", info.Name, "tools", len(tools))

	var outcomes Outcomes

	for _, inv := range stage.Invocations {
		if err := ctx.Err(); err != nil {
			return outcomes, err
		}

		args := inv.Args
		if inv.BuildArgs != nil {
			args = inv.BuildArgs(append(prior, outcomes...))
		}

		result, err := d.client.CallTool(ctx, inv.Tool, args)
		if err != nil {
			return outcomes, fmt.Errorf("call %q: %w", inv.Tool, err)
		}

		outcomes = append(outcomes, Outcome{
			Server: info.Name,
			Tool:   inv.Tool,
			Result: result,
		})

		if !result.Success {
			d.log.Warn("Tool failed", "server", info.Name, "tool", inv.Tool, "error", result.Error)

			if failFast {
				return outcomes, fmt.Errorf("tool %q failed: %s", inv.Tool, result.Error)
			}
		}
	}

	return outcomes, nil
}
