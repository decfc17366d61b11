package resolver

import "strings"

// splitModulePath implements C2: split a bare-module request into its
// package name and subpath, handling scoped packages ("@scope/name/sub").
func splitModulePath(name string) moduleParts {
	name = normalizeSeparators(name)
	segments := strings.Split(name, "/")

	pkg := segments[0]
	rest := segments[1:]

	if strings.HasPrefix(pkg, "@") && len(rest) > 0 {
		pkg = pkg + "/" + rest[0]
		rest = rest[1:]
	}

	return moduleParts{Pkg: pkg, SubPath: strings.Join(rest, "/")}
}
