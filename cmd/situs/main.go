package main

import (
	"os"

	"github.com/idilsaglam/situs/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
