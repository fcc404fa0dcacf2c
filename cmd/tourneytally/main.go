package main

import "github.com/emiliopalmerini/tourneytally/internal/cli"

func main() {
	cli.Execute()
}
