// Command api serves the Critter Collector HTTP API.
//
// @title Critter Collector API
// @version 1.0
// @description Location based animal collecting game: spawners near a point,
// @description operator defined special locations and player collections.
// @BasePath /
package main

import (
	"go.uber.org/fx"
)

func main() {
	fx.New(
		Module,
		fx.Invoke(runServer),
	).Run()
}
