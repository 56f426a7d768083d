// cmd/fxconvert/main.go
package main

import (
	"fxtools/internal/appshell"
	"fxtools/internal/convertapp"
)

func main() { appshell.Main(convertapp.RunContext) }
