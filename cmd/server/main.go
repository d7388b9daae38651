package main

import (
	"fmt"
	"os"

	"github.com/cmpd-nominations/nominations-backend/internal/app"
)

func main() {
	application, err := app.New()
	if err != nil {
		fmt.Printf("failed to initialize app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	if err := application.Run(); err != nil {
		fmt.Printf("server exited: %v\n", err)
		os.Exit(1)
	}
}
