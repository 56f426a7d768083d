// cmd/fxlongest/main.go
package main

import (
	"fxtools/internal/appshell"
	"fxtools/internal/longestapp"
)

func main() { appshell.Main(longestapp.RunContext) }
