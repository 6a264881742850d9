package main

import (
	"halachi/config"
	"halachi/di"
	"halachi/shared/logger"
	"halachi/shared/timezone"
)

// @title Halachi API
// @version 1.0
// @description Hotel and tour booking backend.
// @BasePath /
// @securityDefinitions.apikey AdminPassword
// @in header
// @name X-Admin-Password
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.AttachFile(cfg)
	logger.SetLogLevel(cfg)

	timezone.Init(cfg)

	http := di.InitializeService()
	http.Serve()
}
