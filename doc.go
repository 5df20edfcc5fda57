// Package async is a minimal completion primitive: a one-shot rendezvous
// between a producer that finishes exactly once and a consumer that takes
// the outcome exactly once, with no locks on the hot path.
//
// The center of the library is [Task], a handle to a pending or completed
// outcome. A producer finishes a task in one of two ways: by returning (or
// panicking) from a function started with [Run], or by calling a setter of
// a [CompletionSource] from any goroutine. A consumer takes the outcome in
// one of three ways: blocking with [Get], registering a callback with
// [Then], or bridging to a channel-backed [Future] with [ToFuture]. Every
// one of these is a thin wrapper over the same three-operation protocol
// that any [Awaitable] exposes: Ready, Suspend, Resume.
//
// # The Rendezvous
//
// Internally, each task owns a single atomic cell that encodes its entire
// life: running, ready, done, or "a consumer is suspended here, resume it".
// The producer's announcement and the consumer's registration race on that
// one cell with compare-and-swap; whoever comes second finds the other
// party and proceeds. There is no lock, no polling, and no wait queue,
// because there is at most one waiter.
//
// The same cell enforces the contracts that make one-shot primitives easy
// to reason about: a task may be awaited at most once, and its outcome may
// be taken at most once. Violations are caller bugs and panic immediately
// with a sentinel error such as [ErrAwaitedTwice]; see [errors.Is].
//
// # Success and Failure Travel Together
//
// A completed task carries either a value or a non-nil error in a one-shot
// [Result] slot. An error produced on one goroutine surfaces to exactly the
// consumer that takes the outcome, on whatever goroutine that is, and
// nowhere else. This is deliberate: it is the whole point of the library.
// The flip side is also deliberate: if no consumer ever takes the outcome,
// it is silently discarded, errors included.
//
// A panic in a [Run] body is captured into a [*PanicError] and travels
// the same road as any other failure.
//
// # Where Code Runs
//
// The library has no scheduler and imposes no goroutine affinity.
// A continuation registered with Suspend (or, equivalently, a [Then]
// callback) runs synchronously on whatever goroutine completes the task,
// typically the producer's. Keep continuations short and non-blocking, and
// do not let them panic: a panic escaping a continuation propagates on
// the completing goroutine, where nothing well-defined can catch it.
//
// # Blocking
//
// [Get] adapts the push-driven protocol to ordinary blocking code by
// suspending a throwaway continuation that sets a [Signal], then waiting on
// the signal. Signal is exported because the same one-shot flag is useful
// on its own; it supports waiting indefinitely, with a timeout, or under
// a [context.Context].
package async
