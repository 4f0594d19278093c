package main

import (
	"context"

	"github.com/sirupsen/logrus"

	app "github.com/prajwalhegde/NewsScriptBot/internal/app/bot"
)

func main() {
	ctx := context.Background()

	botApp, err := app.NewApp(ctx)
	if err != nil {
		logrus.Fatalf("Failed to initialize app: %v", err)
	}
	botApp.Run()
}
