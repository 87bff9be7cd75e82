package main

import "github.com/AndersonLongara/AltraFitness-sub001/internal/cli"

func main() {
	cli.Execute()
}
