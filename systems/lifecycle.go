package systems

import (
	"github.com/automoto/cdwalk/components"
	"github.com/automoto/cdwalk/logger"
	"github.com/yohamta/donburi/ecs"
)

// Shutdown saves settings and releases the world's audio and loader resources.
func Shutdown(e *ecs.ECS) {
	SaveCurrentSettings(e)
	StopMusic(e)
	if entry, ok := components.Loader.First(e.World); ok {
		if l := components.Loader.Get(entry).Loader; l != nil {
			l.Release()
		}
	}
	logger.Log.Info("world shut down")
}
