// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	WindowTitle  = "Rounded Rectangle"

	HandleHitRadius = 10.0 // расстояние захвата ручки, строго меньше
	PointRadius     = 5.0

	OutlineWidth = 1.0 // рамка исходного прямоугольника
	StrokeWidth  = 2.0 // обводка скруглённого прямоугольника

	FontSize           = 16.0
	LabelWidthOffsetY  = 20.0
	LabelHeightOffsetY = 40.0
	LabelRadiusOffsetY = 60.0

	// RadiusDisplayScale maps radius/maxRadius onto the number shown in the
	// "Radius" label.
	RadiusDisplayScale = 316.0

	BackendEbiten = "ebiten"
	BackendRaylib = "raylib"
	TargetFPS     = 60
)

var (
	BackgroundColor   = color.RGBA{255, 255, 255, 255}
	OutlineColor      = color.RGBA{128, 128, 128, 255} // gray
	FillColor         = color.RGBA{128, 128, 128, 255} // gray
	StrokeColor       = color.RGBA{0, 0, 255, 255}     // blue
	CornerColor       = color.RGBA{255, 0, 0, 255}     // red
	HandleColor       = color.RGBA{255, 255, 0, 255}   // yellow
	HandleActiveColor = color.RGBA{0, 128, 0, 255}     // green, захваченная ручка
	TextColor         = color.RGBA{0, 0, 0, 255}
)
