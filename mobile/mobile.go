//go:build mobile

// Package mobile is the ebitenmobile entry point for Android and iOS.
//
//	ebitenmobile bind -target android -tags mobile -javapkg com.mattgeverett.cube -o build/cube.aar ./mobile
//	ebitenmobile bind -target ios -tags mobile -o build/Cube.xcframework ./mobile
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/matt-g-everett/cube/anim"
	"github.com/matt-g-everett/cube/screen"
)

func init() {
	mobile.SetGame(screen.NewGame(anim.NewController(), nil))
}

// Dummy is exported so the bind tool generates a package.
func Dummy() {}
