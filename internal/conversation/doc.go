// Package conversation owns the message log for the active chat and the
// simulated assistant replies around it.
//
// The store is framework-agnostic and fully synchronous: Submit appends the
// user turn and hands back a PendingReply describing the assistant turn and
// its simulated latency. The caller (the Bubble Tea app, or a test) schedules
// delivery and feeds the pending reply back through Resolve. Two mechanisms
// keep the log coherent when reply timers overlap:
//
//   - Every pending reply carries the store epoch from submit time. Retry
//     truncation bumps the epoch, so a timer that fires after its exchange
//     was truncated resolves into the void instead of appending a stale turn.
//   - Replies append in submission order. A reply that resolves ahead of an
//     earlier outstanding one is stashed and flushed once its predecessor
//     lands, so [user1, assistant1, user2, assistant2] ordering holds even
//     when the timers race.
//
// Reply content is derived at submit time by deterministic keyword
// classification (DeriveReply); there is no model, network, or retrieval
// behind it.
package conversation
