// cmd/main.go
package main

import (
	"github.com/jeffschoe/chirpy/app"
)

// @title           Chirpy API
// @version         1.0
// @description     A small social-posting API with password auth and refresh-token sessions.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
