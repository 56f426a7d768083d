// cmd/fxcat/main.go
package main

import (
	"fxtools/internal/appshell"
	"fxtools/internal/catapp"
)

func main() { appshell.Main(catapp.RunContext) }
