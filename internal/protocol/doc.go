// Package protocol defines the in-process call contract between clients and
// tool servers.
//
// The protocol is transport-agnostic: no wire format is fixed here. The
// stable boundary is the pair of value types exchanged per invocation:
//
//   - ToolCall: a correlated request carrying a tool name and untyped
//     arguments. Call IDs are client-generated ULIDs used only for
//     correlation and logging; the model is one call at a time, so IDs are
//     never used for multiplexing.
//   - ToolResult: the response to exactly one call. Exactly one of
//     Result/Error is populated, and Success reports which. The Success and
//     Failure constructors are the only way results are built, which is how
//     that invariant is kept.
//
// ServerInfo and ToolSchema describe a server and its discoverable tools.
// Handlers never cross this boundary; discovery output carries schemas only.
package protocol
