package main

import (
	"fmt"
	"os"

	"github.com/idilsaglam/shelf/internal/cli"
)

func main() {
	code := cli.NewApp().Execute(os.Args[1:])
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
