package main

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"bookstore/api"
	"bookstore/internal/config"
)

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	r := gin.Default()
	api.InitRoutes(r)

	if err := r.Run(cfg.ServerAddress); err != nil {
		panic(fmt.Errorf("error trying to start server: %v", err))
	}
}
