package resolver

import (
	"testing"

	"github.com/bundlekit/resolve/internal/fsutil"
)

// Scenario 1: relative resolution with parent-extension priority.
func TestScenarioRelativeWithParentExtensionPriority(t *testing.T) {
	fs := fsutil.NewMockFS(map[string]string{
		"/proj/src/a.jsx": "",
		"/proj/src/b.jsx": "",
		"/proj/src/b.js":  "",
	}, nil)
	r := New(Options{
		RootDir:    "/proj",
		Extensions: []string{".js", ".jsx", ".json"},
		FS:         fs,
	})

	res, err := r.Resolve(Request{Input: "./b", Parent: "/proj/src/a.jsx"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Path != "/proj/src/b.jsx" {
		t.Fatalf("got %q, want /proj/src/b.jsx", res.Path)
	}
}

// Scenario 2: root-absolute resolution.
func TestScenarioRootAbsolute(t *testing.T) {
	fs := fsutil.NewMockFS(map[string]string{
		"/proj/lib/util.js": "",
	}, nil)
	r := New(Options{
		RootDir:    "/proj",
		Extensions: []string{".js", ".json"},
		FS:         fs,
	})

	res, err := r.Resolve(Request{Input: "/lib/util", Parent: "/proj/src/a.js"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Path != "/proj/lib/util.js" {
		t.Fatalf("got %q, want /proj/lib/util.js", res.Path)
	}
}

// Scenario 3: tilde path anchored to the nearest node_modules boundary.
func TestScenarioTilde(t *testing.T) {
	fs := fsutil.NewMockFS(map[string]string{
		"/proj/node_modules/pkg/deep/inner.js": "",
		"/proj/node_modules/pkg/styles.js":     "",
	}, nil)
	r := New(Options{
		RootDir:    "/proj",
		Extensions: []string{".js", ".json"},
		FS:         fs,
	})

	res, err := r.Resolve(Request{Input: "~/styles", Parent: "/proj/node_modules/pkg/deep/inner.js"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Path != "/proj/node_modules/pkg/styles.js" {
		t.Fatalf("got %q, want /proj/node_modules/pkg/styles.js", res.Path)
	}
}

// Scenario 4: node_modules walk resolving a subpath file, with the package
// manifest carried on the result.
func TestScenarioNodeModulesWalkWithSubPathFile(t *testing.T) {
	fs := fsutil.NewMockFS(map[string]string{
		"/proj/node_modules/lodash/package.json": `{"name":"lodash"}`,
		"/proj/node_modules/lodash/fp.js":        "",
	}, nil)
	r := New(Options{
		RootDir:    "/proj",
		Extensions: []string{".js", ".json"},
		FS:         fs,
	})

	res, err := r.Resolve(Request{Input: "lodash/fp", Parent: "/proj/src/a.js"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Path != "/proj/node_modules/lodash/fp.js" {
		t.Fatalf("got %q, want /proj/node_modules/lodash/fp.js", res.Path)
	}
	if res.Pkg == nil || res.Pkg.Name != "lodash" {
		t.Fatalf("expected the lodash manifest to be attached, got %+v", res.Pkg)
	}
}

// Scenario 5: a browser-field alias mapped to false resolves to the empty
// shim rather than failing or falling through to the filesystem.
func TestScenarioBrowserAliasFalse(t *testing.T) {
	fs := fsutil.NewMockFS(map[string]string{
		"/proj/node_modules/p/package.json": `{"name":"p","browser":{"./server.js":false}}`,
		"/proj/node_modules/p/server.js":    "",
	}, nil)
	r := New(Options{
		RootDir:       "/proj",
		Extensions:    []string{".js", ".json"},
		EmptyShimPath: "/proj/_empty.js",
		FS:            fs,
	})

	res, err := r.Resolve(Request{Input: "p/server", Parent: "/proj/src/x.js"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Path != "/proj/_empty.js" {
		t.Fatalf("got %q, want /proj/_empty.js", res.Path)
	}
}

// Scenario 6: glob specifiers pass through as a resolved-but-unprobed path.
func TestScenarioGlobPassThrough(t *testing.T) {
	fs := fsutil.NewMockFS(nil, nil)
	r := New(Options{
		RootDir:    "/proj",
		Extensions: []string{".js", ".json"},
		FS:         fs,
	})

	res, err := r.Resolve(Request{Input: "./pages/*.md", Parent: "/proj/src/index.js"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Path != "/proj/src/pages/*.md" {
		t.Fatalf("got %q, want /proj/src/pages/*.md", res.Path)
	}
	if fs.StatCalls() != 0 {
		t.Fatalf("expected zero stat calls for a glob specifier, got %d", fs.StatCalls())
	}
}

// Scenario 7: an unresolvable bare module fails with a NotFoundError
// mentioning both the input and the issuing directory.
func TestScenarioNotFound(t *testing.T) {
	fs := fsutil.NewMockFS(nil, nil)
	r := New(Options{
		RootDir:    "/proj",
		Extensions: []string{".js", ".json"},
		FS:         fs,
	})

	_, err := r.Resolve(Request{Input: "nonexistent", Parent: "/proj/src/a.js"})
	if err == nil {
		t.Fatal("expected an error")
	}
	nf, ok := err.(*NotFoundError)
	if !ok {
		t.Fatalf("expected *NotFoundError, got %T: %v", err, err)
	}
	if nf.Code != ModuleNotFound {
		t.Fatalf("expected ModuleNotFound code, got %v", nf.Code)
	}
	if nf.Input != "nonexistent" || nf.Dir != "/proj/src" {
		t.Fatalf("got input=%q dir=%q", nf.Input, nf.Dir)
	}
}

// Invariant 2: repeated resolution of the same (input, parent) pair is
// served from cache and returns an identical result.
func TestResolveIsCached(t *testing.T) {
	fs := fsutil.NewMockFS(map[string]string{
		"/proj/src/b.js": "",
	}, nil)
	r := New(Options{
		RootDir:    "/proj",
		Extensions: []string{".js"},
		FS:         fs,
	})

	first, err := r.Resolve(Request{Input: "./b", Parent: "/proj/src/a.js"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := fs.StatCalls()

	second, err := r.Resolve(Request{Input: "./b", Parent: "/proj/src/a.js"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.Path != first.Path {
		t.Fatalf("expected cached result to match, got %q vs %q", second.Path, first.Path)
	}
	if fs.StatCalls() != before {
		t.Fatalf("expected the second resolve to be served entirely from cache, stat calls grew from %d to %d", before, fs.StatCalls())
	}
}

// Invariant 2 (error case): a failed resolution is also cached.
func TestResolveCachesNotFoundResults(t *testing.T) {
	fs := fsutil.NewMockFS(nil, nil)
	r := New(Options{
		RootDir:    "/proj",
		Extensions: []string{".js"},
		FS:         fs,
	})

	_, err1 := r.Resolve(Request{Input: "nonexistent", Parent: "/proj/src/a.js"})
	before := fs.StatCalls()
	_, err2 := r.Resolve(Request{Input: "nonexistent", Parent: "/proj/src/a.js"})
	if err1 == nil || err2 == nil {
		t.Fatal("expected both calls to error")
	}
	if err1.Error() != err2.Error() {
		t.Fatalf("expected identical cached errors, got %q vs %q", err1, err2)
	}
	if fs.StatCalls() != before {
		t.Fatalf("expected the second resolve to be served from cache, stat calls grew from %d to %d", before, fs.StatCalls())
	}
}

// An entry-point request (no parent) resolves relative inputs against
// RootDir.
func TestResolveWithNoParentUsesRootDir(t *testing.T) {
	fs := fsutil.NewMockFS(map[string]string{
		"/proj/main.js": "",
	}, nil)
	r := New(Options{
		RootDir:    "/proj",
		Extensions: []string{".js"},
		FS:         fs,
	})

	res, err := r.Resolve(Request{Input: "./main"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Path != "/proj/main.js" {
		t.Fatalf("got %q, want /proj/main.js", res.Path)
	}
}

// A builtin shim short-circuits before any filesystem probing.
func TestResolveBuiltinShimShortCircuits(t *testing.T) {
	fs := fsutil.NewMockFS(nil, nil)
	r := New(Options{
		RootDir:    "/proj",
		Extensions: []string{".js"},
		Builtins:   map[string]string{"fs": "/shims/fs.js"},
		FS:         fs,
	})

	res, err := r.Resolve(Request{Input: "fs", Parent: "/proj/src/a.js"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Path != "/shims/fs.js" {
		t.Fatalf("got %q, want /shims/fs.js", res.Path)
	}
	if fs.StatCalls() != 0 {
		t.Fatalf("expected zero stat calls for a builtin shim, got %d", fs.StatCalls())
	}
}
