//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the scene in a window.
func (Run) Scene() error {
	mg.Deps(Build.Binary)
	fmt.Println("Run scene...")
	_, err := executeCmd("bin/cubescene", withArgs("-config", "assets/scene.toml"), withStream())
	return err
}

// Runs the scene without a window for a fixed number of frames.
func (Run) Headless() error {
	mg.Deps(Build.Binary)
	fmt.Println("Run headless scene...")
	_, err := executeCmd("bin/cubescene", withArgs("-config", "assets/scene.toml", "-headless", "-frames", "600"), withStream())
	return err
}
