package main

import (
	"agendalab/config"
	"agendalab/di"
	"agendalab/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
