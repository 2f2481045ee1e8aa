package main

import (
	"testing"

	"zkconf/cmd"
)

func TestVersion(t *testing.T) {
	// Test default version
	if version != "dev" {
		t.Errorf("Expected default version to be 'dev', got %s", version)
	}

	// Test setting version (simulating -ldflags injection)
	originalVersion := version
	defer func() { version = originalVersion }()

	version = "1.2.3"
	if version != "1.2.3" {
		t.Errorf("Expected version to be 1.2.3, got %s", version)
	}
}

func TestSetVersionIntegration(t *testing.T) {
	originalVersion := version
	defer func() { version = originalVersion }()

	// SetVersion must accept the formats release tooling produces.
	for _, v := range []string{"dev", "1.0.0", "v2.0.0-rc1"} {
		version = v
		cmd.SetVersion(version)
	}
}
