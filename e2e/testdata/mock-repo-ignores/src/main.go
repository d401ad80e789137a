package main

import (
	"fmt"
	"os"
)

func main() {
	apiKey := os.Getenv("API_KEY")
	customKey := os.Getenv("CUSTOM_API_KEY")
	externalToken := os.Getenv("EXTERNAL_SERVICE_TOKEN")

	fmt.Println(apiKey, customKey, externalToken)
}
