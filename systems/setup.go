package systems

import (
	"io/fs"
	"os"

	"github.com/automoto/tangent/assets"
	"github.com/automoto/tangent/components"
	"github.com/automoto/tangent/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

var (
	assetFS fs.FS = os.DirFS(".")
	logger        = zap.NewNop()
	images        = assets.NewImageLoader(assetFS, logger)
)

// Setup points every system at the asset directory and logger. Call it
// before the first scene is configured.
func Setup(fsys fs.FS, l *zap.Logger) {
	assetFS = fsys
	logger = l
	images = assets.NewImageLoader(fsys, l)
}

// gameEntry returns the singleton game entity.
func gameEntry(e *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Game.First(e.World)
}

func getSession(e *ecs.ECS) *components.SessionData {
	entry, ok := gameEntry(e)
	if !ok {
		return nil
	}
	data := components.Session.Get(entry)
	if data.Session == nil {
		return nil
	}
	return data
}
