package main

import "huurly_backend/internal/app"

func main() {
	app.Run()
}
