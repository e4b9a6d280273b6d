//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the point plotter against the sample configuration.
func (Run) Plot() error {
	fmt.Println("Run point plotter...")
	if _, err := executeCmd("go", withArgs("run", ".", "plot", "vizue.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Runs sample data preparation against the sample configuration.
func (Run) Prepare() error {
	fmt.Println("Run data preparation...")
	if _, err := executeCmd("go", withArgs("run", ".", "prepare", "vizue.toml"), withStream()); err != nil {
		return err
	}
	return nil
}
