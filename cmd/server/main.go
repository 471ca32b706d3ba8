package main

import (
	"os"

	"docsight/internal/app"
)

// @title        docsight API
// @version      1.0
// @description  Retrieval-augmented chat with OCR support for attached images.
// @BasePath     /api
func main() {
	os.Exit(app.Run())
}
