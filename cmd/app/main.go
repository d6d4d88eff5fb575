package main

import (
	"go.uber.org/fx"

	"github.com/deweni2/yt-media-bot/internal/app"
)

func main() {
	fx.New(app.CreateApp()).Run()
}
