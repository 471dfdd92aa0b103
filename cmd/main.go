package main

import (
	"log"

	_ "github.com/arthurquine/RB-Exchange-1/docs"
	"github.com/arthurquine/RB-Exchange-1/internal/app"
)

// @title           RB Exchange Balance API
// @version         1.0
// @description     API для учёта операций обмена валют и агрегированных балансов (базовая валюта DZD)
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1
func main() {
	app, err := app.NewApp()
	if err != nil {
		log.Fatalf("Ошибка создания приложения: %v", err)
	}

	app.BuildTransactionLayer()
	app.BuildBalanceLayer()

	if err := app.Run(); err != nil {
		log.Fatalf("Ошибка при работе приложения: %v", err)
	}
}
