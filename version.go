// Package pdftool provides the version information for pdftool.
package pdftool

// Version is the current version of pdftool.
const Version = "0.1.0"

// GetVersion returns the current version string.
func GetVersion() string {
	return Version
}
