package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Shiv Accounts API
// @version         1.0
// @description     Accounting masters, purchase orders, reports and dashboard for a small furniture business.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
