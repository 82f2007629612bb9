package main

import (
	"os"

	"github.com/dshills/cmpatch/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
