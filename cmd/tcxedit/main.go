package main

import "github.com/workoutkit/tcx-backend-go/internal/cli"

func main() {
	cli.Execute()
}
