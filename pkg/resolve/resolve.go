// Package resolve exposes the bundler's module resolution algorithm as a
// small, documented public API. It wraps the internal resolver package the
// same way esbuild's pkg/api wraps its own internal build pipeline: this
// package holds the stable surface, internal/resolver holds the
// implementation.
//
// Example usage:
//
//	r := resolve.New(resolve.Options{
//	    RootDir:    "/proj",
//	    Extensions: []string{".js", ".json"},
//	    FS:         fsutil.NewRealFS(),
//	})
//
//	result, err := r.Resolve("./util", "/proj/src/index.js")
//	if err != nil {
//	    var notFound *resolve.NotFoundError
//	    if errors.As(err, &notFound) {
//	        // report a friendly "module not found" diagnostic
//	    }
//	}
package resolve

import (
	"github.com/bundlekit/resolve/internal/fsutil"
	"github.com/bundlekit/resolve/internal/resolver"
)

// Options configures a Resolver. See internal/resolver.Options for field
// documentation; this type exists so callers never import
// internal/resolver. The FS field is an internal/fsutil.FS.
type Options struct {
	// RootDir is the project root: the anchor for "/"-prefixed inputs and
	// for loading the root package manifest that supplies root-level
	// aliases.
	RootDir string

	// Extensions is the ordered list of extensions probed when an import
	// omits one, e.g. []string{".tsx", ".ts", ".jsx", ".js", ".json"}.
	Extensions []string

	// Builtins maps a bare module name to an absolute shim path, checked
	// before any node_modules lookup. Use this to replace Node builtins
	// like "fs" or "path" with browser-safe shims.
	Builtins map[string]string

	// EmptyShimPath is the absolute path returned whenever a manifest
	// alias maps a module to the literal false.
	EmptyShimPath string

	// FS is the filesystem collaborator. Pass fsutil.NewRealFS() in
	// production; tests typically pass an fsutil.MockFS.
	FS fsutil.FS
}

// Result is a successful resolution: the absolute path to load, and the
// manifest of the package that owns it, if any.
type Result struct {
	Path string
	Pkg  *resolver.Manifest
}

// NotFoundError is returned when no candidate could be resolved for a
// request. It is always the concrete type produced by a failed Resolve
// call; use errors.As to recover Input and Dir for diagnostics.
type NotFoundError = resolver.NotFoundError

// Resolver resolves import/require specifiers to absolute file paths.
type Resolver struct {
	inner *resolver.Resolver
}

// New constructs a Resolver. RootDir and FS are required; Extensions,
// Builtins, and EmptyShimPath default to empty.
func New(opts Options) *Resolver {
	return &Resolver{inner: resolver.New(resolver.Options{
		RootDir:       opts.RootDir,
		Extensions:    opts.Extensions,
		Builtins:      opts.Builtins,
		EmptyShimPath: opts.EmptyShimPath,
		FS:            opts.FS,
	})}
}

// Resolve resolves input (the text of an import/require directive) as
// issued from parent, the absolute path of the file containing it. Pass an
// empty parent for an entry-point request.
func (r *Resolver) Resolve(input, parent string) (Result, error) {
	res, err := r.inner.Resolve(resolver.Request{Input: input, Parent: parent})
	if err != nil {
		return Result{}, err
	}
	return Result{Path: res.Path, Pkg: res.Pkg}, nil
}
