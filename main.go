package main

import (
	"os"

	"github.com/gamelanding/gamelanding/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
