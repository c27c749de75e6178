// Command demo runs the glint hooks demo: a theme card, a counter card, and
// a width-measurement card under a shared theme scope.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/nextcore/glint/pkg/engine"
	"github.com/nextcore/glint/pkg/graphics"
)

func main() {
	log.SetFlags(log.Ltime)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	engine.SetApp(App{})

	size := graphics.Size{Width: 800, Height: 600}
	if err := engine.Run(ctx, size); err != nil && err != context.Canceled {
		log.Fatalf("demo: %v", err)
	}
}
