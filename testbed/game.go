package testbed

import (
	"fmt"

	"github.com/spaghettifunk/cubescene/engine"
	"github.com/spaghettifunk/cubescene/engine/core"
	"github.com/spaghettifunk/cubescene/engine/scene"
)

// positionLogInterval is how often, in seconds, the player position is logged.
const positionLogInterval = 1.0

type SceneGame struct {
	*engine.Game
}

type gameState struct {
	config     *scene.Config
	configPath string
	scene      *scene.Scene

	reloadHandle core.EventHandle
	sinceLog     float64
	width        uint32
	height       uint32
}

// NewSceneGame wires the demo scene into the engine callbacks. configPath is
// the file cfg was read from; when set and assetsDir is not empty, edits to
// it are applied while running.
func NewSceneGame(cfg *scene.Config, configPath string, assetsDir string) *SceneGame {
	if cfg == nil {
		cfg = scene.DefaultConfig()
	}
	sg := &SceneGame{
		Game: &engine.Game{
			ApplicationConfig: &engine.ApplicationConfig{
				StartPosX:   cfg.Window.PosX,
				StartPosY:   cfg.Window.PosY,
				StartWidth:  cfg.Window.Width,
				StartHeight: cfg.Window.Height,
				Name:        cfg.Window.Title,
				LogLevel:    cfg.LogLevel(),
				AssetsDir:   assetsDir,
				MaxFrames:   cfg.Runtime.MaxFrames,
				LimitFrames: !cfg.Runtime.Headless,
			},
			State: &gameState{
				config:     cfg,
				configPath: configPath,
			},
		},
	}

	sg.FnInitialize = sg.Initialize
	sg.FnUpdate = sg.Update
	sg.FnOnResize = sg.OnResize
	sg.FnShutdown = sg.Shutdown

	return sg
}

func (g *SceneGame) state() *gameState {
	return g.State.(*gameState)
}

// Scene returns the running scene, nil before Initialize.
func (g *SceneGame) Scene() *scene.Scene {
	return g.state().scene
}

func (g *SceneGame) Initialize() error {
	core.LogDebug("SceneGame Initialize fn....")
	state := g.state()

	s, err := scene.Setup(state.config)
	if err != nil {
		core.LogError("failed to set up the scene")
		return err
	}
	state.scene = s

	if state.configPath != "" && g.AssetManager != nil {
		if err := g.AssetManager.Watch(state.configPath); err != nil {
			return fmt.Errorf("watch scene config: %w", err)
		}
		handle, ok := core.EventRegister(core.EVENT_CODE_CONFIG_RELOADED, g.onConfigReloaded)
		if !ok {
			return fmt.Errorf("failed to register the config reload handler")
		}
		state.reloadHandle = handle
	}
	return nil
}

func (g *SceneGame) Update(deltaTime float64) error {
	state := g.state()
	if state.scene == nil {
		return fmt.Errorf("scene not initialized")
	}

	state.scene.Update(scene.CoreInput{}, core.InputMouseWheelEvents(), float32(deltaTime))

	state.sinceLog += deltaTime
	if state.sinceLog >= positionLogInterval {
		state.sinceLog = 0
		for _, p := range state.scene.Query(scene.TagPlayer) {
			pos := p.Transform.Translation
			core.LogDebug("%s at [%.3f, %.3f, %.3f], speed %.2f", p.Name, pos.X, pos.Y, pos.Z, state.scene.Speed)
		}
	}
	return nil
}

func (g *SceneGame) OnResize(width uint32, height uint32) error {
	state := g.state()
	state.width = width
	state.height = height
	return nil
}

func (g *SceneGame) Shutdown() error {
	state := g.state()
	if state.reloadHandle != 0 {
		core.EventUnregister(core.EVENT_CODE_CONFIG_RELOADED, state.reloadHandle)
		state.reloadHandle = 0
	}
	return nil
}

func (g *SceneGame) onConfigReloaded(context core.EventContext) bool {
	state := g.state()
	fe, ok := context.Data.(*core.FileEvent)
	if !ok || fe.Path == "" {
		core.LogError("wrong event associated with the event type `%d`", context.Type)
		return false
	}

	cfg, err := scene.LoadConfig(fe.Path)
	if err != nil {
		// keep the running settings on a broken edit
		core.LogWarn("ignoring %s: %s", fe.Path, err)
		return true
	}
	if err := state.scene.ApplyConfig(cfg); err != nil {
		core.LogWarn("ignoring %s: %s", fe.Path, err)
		return true
	}
	state.config = cfg
	core.SetLogLevel(cfg.LogLevel())
	return true
}
