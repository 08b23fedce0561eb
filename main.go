package main

import (
	"github.com/hgiang7193/hr-management/cmd"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cmd.Execute()
}
