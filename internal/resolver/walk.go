package resolver

import "path"

// walkNodeModules implements C5: locate the node_modules/<pkg> directory
// that owns a bare module name by walking dir's ancestors.
func (r *Resolver) walkNodeModules(name, dir string) locatedModule {
	if shimPath, ok := r.builtins[name]; ok {
		return locatedModule{ModuleName: name, DirectPath: shimPath}
	}

	parts := splitModulePath(name)

	current := dir
	for {
		// Never look for node_modules/node_modules/...: step to the
		// parent first when we're already inside a node_modules dir.
		if path.Base(current) == "node_modules" {
			parent := path.Dir(current)
			if parent == current {
				break
			}
			current = parent
		}

		candidate := path.Join(current, "node_modules", parts.Pkg)
		if stat, err := r.fs.Stat(candidate); err == nil && stat.IsDirectory {
			return locatedModule{
				ModuleName: parts.Pkg,
				SubPath:    parts.SubPath,
				ModuleDir:  candidate,
				FilePath:   path.Join(current, "node_modules", name),
			}
		}

		parent := path.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return locatedModule{ModuleName: parts.Pkg, SubPath: parts.SubPath}
}
