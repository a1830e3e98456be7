package lower

// AliasIndex resolves a \link{topic} reference that stays within the
// current batch to the file stem that owns it. internal/aliasindex.Index
// satisfies this.
type AliasIndex interface {
	Resolve(topic string) (stem string, ok bool)
}

// PackageIndex is one package's resolved pkgdown topic map, the shape the
// lowerer needs regardless of how PackageResolver fetched or cached it.
type PackageIndex struct {
	BaseURL string
	Topics  map[string]string
}

// PackageResolver resolves an external package's pkgdown topic index.
// internal/resolver.Resolver is adapted to this interface by the driver,
// keeping the lowerer free of resolver's filesystem/HTTP concerns.
type PackageResolver interface {
	Resolve(pkg string) (*PackageIndex, error)
}
