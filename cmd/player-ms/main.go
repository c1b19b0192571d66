// Command player-ms serves the account routes.
package main

import "gameapi/internal/app"

func main() {
	app.New(app.PlayerRoutes()).Run()
}
