//go:build mage

// Package main contains Mage build targets for doc-translator.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// storageDirs are the default upload and output directories.
var storageDirs = []string{"uploads", "translated"}

const binDir = "bin"

// binaries maps output names to their main packages.
var binaries = map[string]string{
	"doc-translator": "./cmd/server",
	"doctranslate":   "./cmd/doctranslate",
}

// Init creates the storage directories the server writes to.
func Init() error {
	for _, dir := range storageDirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", dir, err)
		}
		fmt.Println("  ", dir)
	}
	fmt.Println("Storage directories initialized.")
	return nil
}

// Build compiles the server and the CLI into bin/.
func Build() error {
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", binDir, err)
	}
	for name, pkg := range binaries {
		out := filepath.Join(binDir, name)
		if err := sh.RunV("go", "build", "-o", out, pkg); err != nil {
			return fmt.Errorf("go build %s: %w", pkg, err)
		}
		fmt.Printf("Built %s\n", out)
	}
	return nil
}

// Test runs the unit tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Check vets and tests the module.
func Check() {
	mg.SerialDeps(Vet, Test)
}

// Run builds everything and starts the web server.
func Run() error {
	mg.Deps(Build, Init)
	return sh.RunV(filepath.Join(binDir, "doc-translator"))
}

// Clean removes build output.
func Clean() error {
	return sh.Rm(binDir)
}
