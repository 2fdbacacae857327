// Package config loads the YAML configuration for the game and the
// headless runner.
package config

import (
	"github.com/plus3/towerclimb/ecs"
)

// Config contains all configuration for a towerclimb run.
type Config struct {
	Window   WindowConfig      `yaml:"window"`
	World    WorldConfig       `yaml:"world"`
	Player   PlayerConfig      `yaml:"player"`
	Camera   CameraConfig      `yaml:"camera"`
	Tower    TowerConfig       `yaml:"tower"`
	Textures map[string]string `yaml:"textures"`
	Input    InputConfig       `yaml:"input"`
	Debug    DebugConfig       `yaml:"debug"`
}

// WindowConfig defines the window and the frame clear colour.
type WindowConfig struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	ClearColor [3]float32 `yaml:"clear_color"`
	TPS        int        `yaml:"tps"`
}

// WorldConfig defines the entity store.
type WorldConfig struct {
	Capacity int `yaml:"capacity"`
}

// PlayerConfig defines the player entity created at setup.
type PlayerConfig struct {
	Position     Vec3   `yaml:"position"`
	Size         Vec3   `yaml:"size"`
	Acceleration Vec3   `yaml:"acceleration"`
	MaxJumpCount uint8  `yaml:"max_jump_count"`
	Texture      string `yaml:"texture"`
}

// CameraConfig defines the debug camera.
type CameraConfig struct {
	MovementSpeed float32 `yaml:"movement_speed"`
	Follow        bool    `yaml:"follow"`
}

// TowerConfig defines the tower skeleton. Stairs are drawn but have no collision.
type TowerConfig struct {
	Floors         uint32  `yaml:"floors"`
	Stairs         uint32  `yaml:"stairs"`
	Width          float32 `yaml:"width"`
	ScrollingSpeed float32 `yaml:"scrolling_speed"`
	StairSize      Vec3    `yaml:"stair_size"`
	StairTexture   string  `yaml:"stair_texture"`
}

// InputConfig maps actions to ebiten key names.
type InputConfig struct {
	Jump         string `yaml:"jump"`
	Up           string `yaml:"up"`
	Down         string `yaml:"down"`
	Left         string `yaml:"left"`
	Right        string `yaml:"right"`
	CameraUp     string `yaml:"camera_up"`
	CameraDown   string `yaml:"camera_down"`
	CameraLeft   string `yaml:"camera_left"`
	CameraRight  string `yaml:"camera_right"`
	CameraFollow string `yaml:"camera_follow"`
	Confirm      string `yaml:"confirm"`
	GiveUp       string `yaml:"give_up"`
	Overlay      string `yaml:"overlay"`
}

// DrawErrorPolicy selects what happens when a quad fails to draw.
type DrawErrorPolicy string

const (
	DrawErrorFail DrawErrorPolicy = "fail"
	DrawErrorSkip DrawErrorPolicy = "skip"
)

// DebugConfig defines the debug overlay and error policy.
type DebugConfig struct {
	Overlay     bool            `yaml:"overlay"`
	OnDrawError DrawErrorPolicy `yaml:"on_draw_error"`
}

// Vec3 is a YAML sequence of three floats.
type Vec3 [3]float32

func (v Vec3) ECS() ecs.Vec3 {
	return ecs.Vec3{X: v[0], Y: v[1], Z: v[2]}
}
