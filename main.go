package main

import (
	"os"

	"sable/cmd"
)

func main() {
	os.Exit(cmd.RunCompiler())
}
