package main

import (
	"fmt"

	"whosmudassir/shop-api/app"
	"whosmudassir/shop-api/config"
	"whosmudassir/shop-api/db"
	"whosmudassir/shop-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	gin.SetMode(gin.ReleaseMode)

	err := config.Setup()
	if err != nil {
		panic(err)
	}

	if *config.SeedCategories {
		database, err := db.New()
		if err != nil {
			panic(err)
		}

		if err := service.SeedCategories(database, 100); err != nil {
			panic(err)
		}
		return
	}

	router, err := app.NewRouter()
	if err != nil {
		panic(err)
	}

	zap.L().Info("Server starting")

	err = router.Run(fmt.Sprintf(":%d", viper.GetInt("host.port")))
	if err != nil {
		panic(err)
	}
}
