// Command gameapi serves the account and save routes from one process.
package main

import "gameapi/internal/app"

func main() {
	app.New(
		app.DefaultRoutes(),
		app.PlayerRoutes(),
		app.SaveRoutes(),
	).Run()
}
