package async

// Then arranges for continuation to run with a's outcome, packaged in
// a one-shot [Result], once a completes. It accepts any [Awaitable].
//
// If a is already complete, continuation runs synchronously before Then
// returns. Otherwise it runs later, on whatever goroutine completes a.
// Either way it runs exactly once, and a panic from it propagates on that
// goroutine; wrap the continuation if that is not acceptable.
//
// Then consumes a's single await: do not combine it with other consumers of
// the same awaitable.
func Then[T any](a Awaitable[T], continuation func(*Result[T])) {
	if continuation == nil {
		panic("async: Then called with nil continuation")
	}
	deliver := func() {
		r := new(Result[T])
		if v, err := a.Resume(); err != nil {
			r.SetError(err)
		} else {
			r.SetValue(v)
		}
		continuation(r)
	}
	if !a.Suspend(deliver) {
		deliver()
	}
}
