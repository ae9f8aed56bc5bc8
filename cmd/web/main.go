package main

import "contala_backend/internal/app"

func main() {
	app.Run()
}
