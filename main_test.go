package main

import (
	"math"
	"testing"

	"github.com/dfalck/go-path-tracer/pkg/core"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name        string
		sceneType   string
		expectError bool
	}{
		{"default scene", "default", false},
		{"cover scene", "cover", false},
		{"sky scene", "sky", false},
		{"unknown scene", "cornell", true},
		{"empty scene type", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType, 42)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type %q, got none", tt.sceneType)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if s == nil {
				t.Fatal("Expected a scene, got nil")
			}
			if s.GetWorld() == nil {
				t.Error("Scene has no world")
			}
		})
	}
}

func TestParseVec3(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    core.Vec3
		expectError bool
	}{
		{"integers", "1,2,3", core.NewVec3(1, 2, 3), false},
		{"floats", "0.5,-2.25,10", core.NewVec3(0.5, -2.25, 10), false},
		{"spaces around commas", " 13, 2 ,3 ", core.NewVec3(13, 2, 3), false},
		{"too few components", "1,2", core.Vec3{}, true},
		{"too many components", "1,2,3,4", core.Vec3{}, true},
		{"non-numeric component", "1,two,3", core.Vec3{}, true},
		{"empty string", "", core.Vec3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := parseVec3(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q, got %v", tt.input, v)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if math.Abs(v.X-tt.expected.X) > 1e-12 ||
				math.Abs(v.Y-tt.expected.Y) > 1e-12 ||
				math.Abs(v.Z-tt.expected.Z) > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, v)
			}
		})
	}
}
