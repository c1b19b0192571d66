// Command save-ms serves the save-document routes. It verifies tokens against
// the same players table as player-ms.
package main

import "gameapi/internal/app"

func main() {
	app.New(app.SaveRoutes()).Run()
}
