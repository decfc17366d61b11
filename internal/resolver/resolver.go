package resolver

import (
	"path"

	"github.com/bundlekit/resolve/internal/fsutil"
)

// Options configures a Resolver (spec §6).
type Options struct {
	// RootDir anchors "/"-prefixed inputs and tilde resolution, and is
	// where the project-root manifest is read from.
	RootDir string

	// Extensions is the active extension candidate order, e.g.
	// []string{".js", ".json"}.
	Extensions []string

	// Builtins maps a bare module name straight to an absolute shim path,
	// consulted before any node_modules walk (spec §4.3 step 1).
	Builtins map[string]string

	// EmptyShimPath is returned whenever an alias value is the literal
	// false (spec §3, "Caches").
	EmptyShimPath string

	FS fsutil.FS
}

// Resolver is the resolution driver (C8): it owns the top-level caches and
// orchestrates C1 through C7 for each request.
type Resolver struct {
	fs            fsutil.FS
	rootDir       string
	extensions    []string
	builtins      map[string]string
	emptyShimPath string

	manifests *manifestCache
	results   *resultCache
}

// New builds a Resolver from Options.
func New(opts Options) *Resolver {
	builtins := opts.Builtins
	if builtins == nil {
		builtins = make(map[string]string)
	}

	return &Resolver{
		fs:            opts.FS,
		rootDir:       path.Clean(opts.RootDir),
		extensions:    opts.Extensions,
		builtins:      builtins,
		emptyShimPath: opts.EmptyShimPath,
		manifests:     newManifestCache(),
		results:       newResultCache(),
	}
}

// Resolve implements C8: the full driver for one resolution request.
func (r *Resolver) Resolve(req Request) (Resolution, error) {
	// The cache key uses the bare dirname of parent, or "" when there is
	// no parent (spec §4.7); this is distinct from the working directory
	// classify/the glob short-circuit resolve against (spec §4.1).
	keyDir := ""
	if req.Parent != "" {
		keyDir = path.Dir(req.Parent)
	}
	key := keyDir + ":" + req.Input

	if cached, ok := r.results.get(key); ok {
		return cached.res, cached.err
	}

	dir := r.issuingDir(req.Parent)

	if isGlob(req.Input) {
		res := Resolution{Path: resolvePath(dir, req.Input)}
		r.results.set(key, res, nil)
		return res, nil
	}

	exts := r.activeExtensions(req.Parent)

	module := r.resolveModule(req.Input, dir)

	var (
		res Resolution
		ok  bool
	)

	switch {
	case module.DirectPath != "":
		res, ok = Resolution{Path: module.DirectPath}, true
	case module.ModuleDir != "":
		res, ok = r.loadNodeModules(module, exts)
	case module.FilePath != "":
		res, ok = r.loadRelative(module.FilePath, exts)
	}

	if !ok {
		err := newNotFound(req.Input, dir)
		r.results.set(key, Resolution{}, err)
		return Resolution{}, err
	}

	r.results.set(key, res, nil)
	return res, nil
}

// issuingDir computes dirname(parent), or the resolver's root when there
// is no parent (an entry-point request).
func (r *Resolver) issuingDir(parent string) string {
	if parent == "" {
		return r.rootDir
	}
	return path.Dir(parent)
}

// resolveModule runs C1 (classification), the load-time alias pass, and
// C5 (the node_modules walk) for a single request.
func (r *Resolver) resolveModule(input, dir string) locatedModule {
	owner, _ := r.findPackage(dir)

	aliased := r.resolveAliases(input, owner)
	if aliased.Empty {
		return locatedModule{DirectPath: r.emptyShimPath}
	}
	input = aliased.Text

	c := r.classify(input, dir)

	switch c.kind {
	case kindAbsolute, kindTilde, kindRelative:
		return locatedModule{FilePath: c.absPath}
	default:
		return r.walkNodeModules(c.bareName, dir)
	}
}
