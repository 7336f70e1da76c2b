package main

import (
	"os"

	"github.com/geoknoesis/facadex-go/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
