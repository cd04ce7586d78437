// Package refresolve normalizes the textual references a plugin descriptor
// declares and resolves each one against disk, other legal resource roots,
// and the dependency-archive class lookup, in a fixed probe order.
package refresolve

import "strings"

const classpathPrefix = "classpath:"

// Normalize applies the Resource Reference rules: strip a leading
// "classpath:" prefix, convert backslashes to forward slashes, then strip
// every leading slash. The result is idempotent — normalizing an already
// normalized reference returns it unchanged.
func Normalize(ref string) string {
	ref = strings.TrimPrefix(ref, classpathPrefix)
	ref = strings.ReplaceAll(ref, "\\", "/")
	ref = strings.TrimLeft(ref, "/")
	return ref
}
