package projectsetup

import "strings"

// defaultGoals is the fixed Maven invocation vector: non-interactive,
// quiet, skip tests, clean the module, package it, compile it, and copy
// the resolved dependency jars into target/dependency so classlookup can
// index them.
var defaultGoals = []string{
	"-B",
	"-q",
	"-DskipTests",
	"clean",
	"package",
	"compile",
	"dependency:copy-dependencies",
}

// buildArgv composes the final Maven argument vector from the fixed
// default, a set of goals to remove, and a set of goals to add. Goals of
// the form KEY=VALUE replace any existing argument with the same KEY
// prefix instead of appending alongside it.
func buildArgv(skip, extra []string) []string {
	argv := make([]string, 0, len(defaultGoals)+len(extra))
	skipSet := make(map[string]bool, len(skip))
	for _, s := range skip {
		skipSet[s] = true
	}

	for _, g := range defaultGoals {
		if !skipSet[g] {
			argv = append(argv, g)
		}
	}

	for _, e := range extra {
		key, isKV := keyOf(e)
		if isKV {
			if idx := indexByKey(argv, key); idx >= 0 {
				argv[idx] = e
				continue
			}
		}
		if !contains(argv, e) {
			argv = append(argv, e)
		}
	}

	return argv
}

func keyOf(arg string) (string, bool) {
	i := strings.IndexByte(arg, '=')
	if i < 0 {
		return "", false
	}
	return arg[:i+1], true
}

func indexByKey(argv []string, key string) int {
	bare := strings.TrimSuffix(key, "=")
	for i, a := range argv {
		if a == bare || strings.HasPrefix(a, key) {
			return i
		}
	}
	return -1
}

func contains(argv []string, v string) bool {
	for _, a := range argv {
		if a == v {
			return true
		}
	}
	return false
}
