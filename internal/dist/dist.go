package dist

import "context"

// Distribution is one content-delivery endpoint visible to the credentials.
type Distribution struct {
	ID         string
	DomainName string
	Aliases    []string
}

// Lister enumerates every distribution the caller's credentials can see.
type Lister interface {
	List(context.Context) ([]Distribution, error)
}
