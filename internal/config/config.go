package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Host loop rates
	ActiveTPS      = 60
	IdleTPS        = 10
	TerminalFPS    = 30
	DefaultTimeout = 3 * time.Minute

	// Shared palette, background is always white
	ColorMagenta = "#FF00FF"
	ColorYellow  = "#FFFF00"
	ColorCyan    = "#00FFFF"
	Background   = "#FFFFFF"

	// Star warp parameters
	StarCount    = 3000
	StarSpeed    = 2.0
	StarMaxDepth = 1500.0

	// Pipe parameters
	PipeCount           = 5
	PipeSegmentLength   = 20.0
	PipeMaxSegments     = 50
	PipeTurnProbability = 0.1
	PipeLineWidth       = 10.0

	// Toaster parameters
	ToasterCount         = 20
	ToasterLogoWidth     = 60.0
	ToasterLogoHeight    = 30.0
	ToasterMaxTilt       = 0.3141592653589793 // pi/10
	ToasterMinCountdown  = 50.0
	ToasterCountdownSpan = 200.0

	// DVD logo parameters
	DvdLogoWidth      = 120.0
	DvdLogoHeight     = 60.0
	DvdMinSpeed       = 1.5
	DvdSpeedSpan      = 1.0
	DvdTransitionRate = 0.001

	// Chime parameters
	ChimeSampleRate = 44100
	ChimeBuffer     = 100 * time.Millisecond
	ChimeNoteLength = 90 * time.Millisecond
	ChimeAttack     = 5 * time.Millisecond
	ChimeRelease    = 70 * time.Millisecond
	ChimeVolume     = 0.25
)

// Palette lists the accent colours every effect draws from.
var Palette = []string{ColorMagenta, ColorYellow, ColorCyan}
