package convert

import (
	"rd2qmd/internal/lower"
	"rd2qmd/internal/resolver"
)

// resolverAdapter narrows internal/resolver.Resolver down to the
// lower.PackageResolver interface, keeping internal/lower free of the
// filesystem/HTTP/caching concerns resolver.Resolver carries.
type resolverAdapter struct {
	r *resolver.Resolver
}

func newResolverAdapter(r *resolver.Resolver) lower.PackageResolver {
	return &resolverAdapter{r: r}
}

func (a *resolverAdapter) Resolve(pkg string) (*lower.PackageIndex, error) {
	entry, err := a.r.Resolve(pkg)
	if entry == nil {
		return nil, err
	}
	return &lower.PackageIndex{BaseURL: entry.BaseURL, Topics: entry.Topics}, err
}
