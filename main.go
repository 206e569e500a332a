package main

import (
	"canvasflow.dev/backend/cmd/app"
)

// @title          CanvasFlow Pro API
// @version        1.0.0
// @description    Backend for the CanvasFlow Pro task board: columns, Gantt timeline, projects and the assistant command surface.
// @BasePath       /api
func main() {
	app.Run()
}
