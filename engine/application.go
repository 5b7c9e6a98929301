package engine

import "github.com/spaghettifunk/cubescene/engine/core"

type ApplicationConfig struct {
	// Window starting position x axis, if applicable.
	StartPosX uint32
	// Window starting position y axis, if applicable.
	StartPosY uint32
	// Window starting width, if applicable.
	StartWidth uint32
	// Window starting height, if applicable.
	StartHeight uint32
	// The application name used in windowing, if applicable.
	Name     string
	LogLevel core.LogLevel
	// Directory watched for asset changes. Empty disables the watcher.
	AssetsDir string
	// Stop after this many frames. Zero runs until quit.
	MaxFrames uint64
	// Sleep away the rest of each frame to hold 60 fps.
	LimitFrames bool
}
