package shutdown

import (
	"context"
	"os"
)

// Shutdowner is implemented by every component that needs a graceful stop.
type Shutdowner interface {
	Name() string
	Shutdown(ctx context.Context) error
}

type quiter interface {
	Quit() <-chan os.Signal
}
