package main

import (
	_ "printlite/docs"
	"printlite/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           PrintLite API
// @version         1.0
// @description     Print-on-demand pricing and order lifecycle service backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
