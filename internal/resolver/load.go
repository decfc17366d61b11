package resolver

import "path"

// loadAsFile implements the first half of C7: the first expandFile
// candidate that the filesystem reports as a regular file (or FIFO) wins.
// The empty-shim candidate (an alias of false) is never stat'd: it's a
// fixed, configuration-supplied path, not something expected to exist on
// the filesystem being resolved against (spec §4.5).
func (r *Resolver) loadAsFile(file string, exts []string, pkg *Manifest) (Resolution, bool) {
	for _, candidate := range r.expandFile(file, exts, pkg, true) {
		if r.emptyShimPath != "" && candidate == r.emptyShimPath {
			return Resolution{Path: candidate, Pkg: pkg}, true
		}

		stat, err := r.fs.Stat(candidate)
		if err != nil {
			continue
		}
		if stat.IsFile || stat.IsFIFO {
			return Resolution{Path: candidate, Pkg: pkg}, true
		}
	}
	return Resolution{}, false
}

// loadDirectory implements the second half of C7: try the manifest's main
// entry point, then fall back to an "index" file. visited guards against a
// manifest's main field pointing back into its own directory (spec §9).
func (r *Resolver) loadDirectory(dir string, exts []string, visited map[string]bool) (Resolution, bool) {
	if visited == nil {
		visited = make(map[string]bool)
	}
	if visited[dir] {
		return Resolution{}, false
	}
	visited[dir] = true

	if pkg, ok := r.readManifest(dir); ok {
		main := getPackageMain(pkg)

		if res, ok := r.loadAsFile(main, exts, pkg); ok {
			return res, true
		}
		if res, ok := r.loadDirectory(main, exts, visited); ok {
			return res, true
		}
	}

	return r.loadAsFile(path.Join(dir, "index"), exts, nil)
}

// loadRelative implements loadRelative: locate the owning package of file,
// then try it as a file, then as a directory.
func (r *Resolver) loadRelative(file string, exts []string) (Resolution, bool) {
	pkg, _ := r.findPackage(path.Dir(file))

	if res, ok := r.loadAsFile(file, exts, pkg); ok {
		return res, true
	}
	return r.loadDirectory(file, exts, nil)
}

// loadNodeModules implements loadNodeModules for a located node_modules
// package directory.
func (r *Resolver) loadNodeModules(module locatedModule, exts []string) (Resolution, bool) {
	if module.SubPath != "" {
		pkg, _ := r.readManifest(module.ModuleDir)
		return r.loadAsFile(module.FilePath, exts, pkg)
	}
	return r.loadDirectory(module.FilePath, exts, nil)
}
