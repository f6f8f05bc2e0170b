package main

import (
	"github.com/fikanova/portfolio/internal/server"
)

func main() {
	s := server.New()
	s.RegisterRoutes()
	s.Start()
}
