package host

import "strings"

// JoinPath joins a logical directory path and an asset name. Logical paths
// always use forward slashes regardless of platform.
func JoinPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") {
		return dir + name
	}
	return dir + "/" + name
}

// DirOf returns the logical directory portion of a full asset path,
// including the trailing slash.
func DirOf(path string) string {
	idx := strings.LastIndex(path, "/")
	if idx < 0 {
		return "/"
	}
	return path[:idx+1]
}
