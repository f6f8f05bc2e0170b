package main

import (
	"github.com/fikanova/portfolio/cmd/portfolio-cli/cmd"
)

func main() {
	cmd.Execute()
}
