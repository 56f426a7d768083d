// internal/version/version.go
package version

// Version is the toolkit version. Release builds may override it with
// -ldflags "-X fxtools/internal/version.Version=...".
var Version = "0.3.1"
