// Command lambda serves the API behind an AWS Lambda Function URL.
package main

import (
	"exam_backend/internal/app"
	"exam_backend/internal/config"
	"log"

	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	cfg, err := config.LoadConfig(config.DefaultDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	// Lambda only has /tmp for writes.
	cfg.Log.File = ""

	application := app.NewApp(cfg)
	lambda.Start(application.HandleFunctionURL)
}
