// cmd/fxregion/main.go
package main

import (
	"fxtools/internal/appshell"
	"fxtools/internal/regionapp"
)

func main() { appshell.Main(regionapp.RunContext) }
