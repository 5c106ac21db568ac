package invalidate

import "context"

// Request asks the content-delivery layer to purge cached copies of objects
// matching Paths on one distribution. Reference is a caller-supplied token the
// provider uses to deduplicate otherwise-identical requests; it must be unique
// per request.
type Request struct {
	Distribution string
	Paths        []string
	Reference    string
}

// Result identifies the invalidation the provider created.
type Result struct {
	Distribution string
	Invalidation string
}

type Invalidator interface {
	Invalidate(context.Context, Request) (Result, error)
}
