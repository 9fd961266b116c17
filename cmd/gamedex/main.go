package main

import (
	"os"

	"github.com/gamedex/gamedex/internal/app"
)

func main() {
	os.Exit(app.Run(os.Args[1:]))
}
