package main

import (
	"os"

	"github.com/leonardinius/mathexpr/cmd"
)

func main() {
	app := cmd.NewCalcApp()
	os.Exit(app.Main(os.Args[1:]))
}
