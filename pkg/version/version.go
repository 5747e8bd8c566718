package version

import "fmt"

// DotyVersion indicates what version of doty the binary belongs to
var DotyVersion string

// GitCommit indicates which git commit the binary was built from
var GitCommit string

// String returns a pretty string concatenation of DotyVersion and GitCommit
func String() string {
	return fmt.Sprintf("doty Version:   %s\n Git commit: %s\n", DotyVersion, GitCommit)
}
