package main

import (
	"context"
	"os"

	"github.com/thenoetrevino/lista/cmd"
)

func main() {
	os.Exit(cmd.Execute(context.Background()))
}
