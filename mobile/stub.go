//go:build !mobile

package mobile

// Dummy is exported so the bind tool generates a package.
func Dummy() {}
