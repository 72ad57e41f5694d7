// Package location wraps a platform position source in a single-shot,
// time-bounded lookup.
//
// Resolve never returns an error. A denied permission, a failed lookup or a
// lookup that outlives the timeout all produce domain.Unavailable, and there
// are no retries: one attempt per alert.
package location
