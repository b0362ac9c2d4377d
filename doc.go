// Package structaware implements the Go client for the StructAware
// structural-engineering platform: the session/auth lifecycle (token
// acquisition, caching, request authorization, invalidation), route
// guarding for protected views, declarative form validation, and the
// transient UI state that shares the same durable-storage conventions.
//
// New assembles the whole core; the sub-packages remain usable on their
// own:
//
//	rt, err := structaware.New(&structaware.Config{StorageURL: stateFile})
//	if err != nil { ... }
//	rt.Session.Bootstrap(ctx)
//	if rt.Guard.Decide() == guard.Allow { ... }
package structaware
