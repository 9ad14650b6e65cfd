// Package toolwire provides an in-process protocol for discovering and
// invoking named, schema-described tools exposed by independent servers.
//
// A single orchestrating caller drives a Client; the Client connects to one
// Server at a time, caches the discovered tool list, and issues correlated
// calls. Servers route each call to a registered handler and report every
// outcome in-band as a ToolResult. No wire transport is bound: the stable
// boundary is the in-process call contract.
//
// # Basic Usage
//
// Build a server from tools, then drive it through a client:
//
//	echo := toolwire.NewTool("echo", "Echo a value",
//	    toolwire.SimpleSchema(map[string]string{"value": "string"}),
//	    func(ctx context.Context, args map[string]any) (any, error) {
//	        return map[string]any{"value": args["value"]}, nil
//	    },
//	)
//
//	server, err := toolwire.NewServer("demo", "1.0.0", []*toolwire.Tool{echo})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client := toolwire.NewClient()
//	if err := client.Connect(server); err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Disconnect()
//
//	result, err := client.CallTool(ctx, "echo", map[string]any{"value": "hi"})
//	if err != nil {
//	    log.Fatal(err) // only connection-state violations raise
//	}
//	if !result.Success {
//	    log.Printf("tool failed: %s", result.Error)
//	}
//
// # Error Handling
//
// Misuse of the client state machine raises Go errors: ErrNotConnected when
// discovery or a call is attempted while disconnected, ErrAlreadyConnected
// when Connect is called twice without a Disconnect in between. Everything a
// tool does — unknown name, handler error, handler panic — is normalized
// into the ToolResult, so calling code has one uniform success/failure
// channel per call:
//
//	result, err := client.CallTool(ctx, "search_customers", args)
//	if err != nil {
//	    // programmer error: the client was not connected
//	}
//	if !result.Success {
//	    // tool-level failure, described by result.Error
//	}
//
// # Orchestration
//
// The Driver sequences connect → discover → call → disconnect across
// several servers and lets later invocations compute their arguments from
// earlier results:
//
//	driver := toolwire.NewDriver(toolwire.NewClient())
//	outcomes, err := driver.Run(ctx, toolwire.Plan{
//	    Stages: []toolwire.Stage{
//	        {Server: crmServer, Invocations: []toolwire.Invocation{
//	            {Tool: "add_customer", Args: map[string]any{"name": "Ada", "email": "ada@example.com"}},
//	        }},
//	        {Server: mailServer, Invocations: []toolwire.Invocation{
//	            {Tool: "send_email", BuildArgs: func(prior toolwire.Outcomes) map[string]any {
//	                created, _ := prior.Payload("add_customer")
//	                return map[string]any{
//	                    "to":      created["email"],
//	                    "subject": "Welcome",
//	                    "body":    "Hello!",
//	                }
//	            }},
//	        }},
//	    },
//	})
//
// # Logging
//
// Pass a *slog.Logger with WithLogger (clients) or WithServerLogger
// (servers); without one, operation is silent.
package toolwire
