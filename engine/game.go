package engine

import "github.com/spaghettifunk/cubescene/engine/assets"

type Game struct {
	ApplicationConfig *ApplicationConfig
	// Set by the engine before FnInitialize is called. Nil when
	// ApplicationConfig.AssetsDir is empty.
	AssetManager *assets.AssetManager
	State        interface{}
	FnInitialize Initialize
	FnUpdate     Update
	FnOnResize   OnResize
	FnShutdown   Shutdown
}

type Initialize func() error
type Update func(deltaTime float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
