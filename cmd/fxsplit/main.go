// cmd/fxsplit/main.go
package main

import (
	"fxtools/internal/appshell"
	"fxtools/internal/splitapp"
)

func main() { appshell.Main(splitapp.RunContext) }
