package main

import (
	"borrowdung/config"
	"borrowdung/di"
	"borrowdung/shared/logger"
	"borrowdung/shared/timezone"
)

func main() {
	cfg := config.Get()

	logger.InitLogger(cfg)

	logger.SetLogLevel(cfg)

	timezone.Setup(cfg.App.Timezone)

	http := di.InitializeService()
	http.Serve()
}
