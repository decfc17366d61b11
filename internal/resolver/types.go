// Package resolver implements the bundler's module resolution algorithm: an
// extension of Node's node_modules resolution with multi-extension probing,
// glob specifiers, root-absolute and tilde paths, and an alias-rewriting
// subsystem sourced from both per-package and root package manifests.
package resolver

import omap "github.com/wk8/go-ordered-map/v2"

// Request is the immutable input to a resolution: the text that appeared in
// an import/require directive, plus the absolute path of the file that
// issued it (empty for an entry-point request with no parent).
type Request struct {
	Input  string
	Parent string
}

// moduleKind tags the shape C1 assigned to a request's input.
type moduleKind uint8

const (
	kindAbsolute moduleKind = iota
	kindTilde
	kindRelative
	kindBare
)

// classified is the output of classify (C1): the kind of the input plus
// whatever data that kind carries forward. Glob specifiers never reach
// classify: Resolve detects and short-circuits them first (spec §4.1).
type classified struct {
	kind moduleKind

	// Absolute candidate path for kindAbsolute, kindTilde, kindRelative.
	absPath string

	// Raw (post-alias) bare module text, for kindBare.
	bareName string
}

// moduleParts is the result of split (C2): a bare module name broken into
// its package name and subpath.
type moduleParts struct {
	Pkg     string
	SubPath string
}

// locatedModule is the result of the node_modules walk (C5).
type locatedModule struct {
	ModuleName string
	SubPath    string

	// ModuleDir and FilePath are empty if the walk never found a real
	// node_modules/<pkg> directory; the caller then fails with NotFound.
	ModuleDir string
	FilePath  string

	// DirectPath is set when resolution is already complete without a
	// filesystem probe: either name matched the builtin-shim table, or an
	// alias resolved to the literal false (the empty-shim convention).
	DirectPath string
}

// AliasValue is the post-lookup value of an alias table entry: either a
// rewritten name/path, or the "false" empty-shim marker.
type AliasValue struct {
	// Empty is true when the manifest mapped this key to the literal false.
	Empty bool

	// Text is the replacement string (only meaningful when !Empty).
	Text string
}

// AliasTable is an alias pattern table, e.g. a manifest's "alias" or
// "browser" field when that field is an object. Order matters: glob
// patterns are tried in declaration order, so the backing map must
// preserve insertion order (spec §9).
type AliasTable = *omap.OrderedMap[string, AliasValue]

// Manifest is the in-memory representation of a package.json, augmented
// with the two synthesized fields the spec calls for.
type Manifest struct {
	PkgFile string // absolute path to package.json
	PkgDir  string // directory containing it

	Name        string
	Main        string
	Module      string
	Source      string // dropped (left "") if the file isn't a symlink, see §4.4
	SourceAlias AliasTable

	// Browser carries either an entry-point override (BrowserMain, when the
	// field is a string) or an alias table (BrowserAlias, when it is an
	// object); at most one of the two is set.
	BrowserMain    string
	HasBrowserMain bool
	BrowserAlias   AliasTable

	Alias AliasTable

	hasSource bool
}

// Resolution is the outcome of a successful resolve call.
type Resolution struct {
	Path string
	Pkg  *Manifest
}
