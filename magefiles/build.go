//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
)

type Build mg.Namespace

// Builds the scene binary into bin/.
func (Build) Binary() error {
	_, err := executeCmd("go", withArgs("build", "-o", "bin/cubescene", "."), withStream())
	return err
}

// Builds the meshbake tool into bin/.
func (Build) Meshbake() error {
	_, err := executeCmd("go", withArgs("build", "-o", "../../bin/meshbake", "."), withDir("cmd/meshbake"), withStream())
	return err
}
