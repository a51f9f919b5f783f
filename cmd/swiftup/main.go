package main

import (
	"errors"
	"os"

	cmd "github.com/swiftup/swiftup/internal"
	"github.com/swiftup/swiftup/internal/logger"
	"github.com/swiftup/swiftup/internal/middleware"
	"github.com/swiftup/swiftup/internal/service"
)

func main() {
	err := cmd.Execute()

	// release the shared connection pool before any exit path
	service.Shutdown()

	if err != nil {
		if !errors.Is(err, middleware.ErrLogged) {
			logger.LogError("%s", err.Error())
		}
		os.Exit(1)
	}
}
