package main

import (
	"habitat/internal/adapters/in/cli"
)

var (
	version string
	commit  string
	date    string
)

func main() {
	cli.Execute(version, commit, date)
}
