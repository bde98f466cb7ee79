package version

// version is overridden at build time:
//
//	go build -ldflags "-X pizzeria/pkg/version.version=1.2.0"
var version = "dev"

// Version returns the build version of the binary.
func Version() string { return version }
