package main

import (
	"os"

	"yargizeka/internal/cmd"
)

func main() {
	os.Exit(cmd.Main())
}
