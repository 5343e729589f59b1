package main

import (
	"github.com/w3Abhishek/ytm-api/api/router"
	"github.com/w3Abhishek/ytm-api/initializers"
)

func init() {
	initializers.LoadEnv()
}

func main() {
	router.SetupServer()
}
