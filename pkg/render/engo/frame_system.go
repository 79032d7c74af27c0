// pkg/render/engo/frame_system.go
package engo

import (
	"github.com/EngoEngine/ecs"

	"github.com/opd-ai/go-invaders/pkg/engine"
)

// FrameSystem is the engine.Scheduler for windowed runs: engo calls Update
// once per display frame and the pending game frame runs there.
type FrameSystem struct {
	engine.FrameQueue
}

// Priority runs the game frame after input and before rendering
func (fs *FrameSystem) Priority() int {
	return 10
}

// Remove satisfies the ecs.System interface
func (fs *FrameSystem) Remove(basic ecs.BasicEntity) {}

// Update runs the pending frame callback. dt is ignored, movement is fixed
// per frame.
func (fs *FrameSystem) Update(dt float32) {
	fs.RunPending()
}
