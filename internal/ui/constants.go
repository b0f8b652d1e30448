package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
)

// Layout sizing
const (
	WindowWidth  float32 = 720
	WindowHeight float32 = 640

	ThumbnailWidth  float32 = 320
	ThumbnailHeight float32 = 180
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 120
	ToastMargin   float32 = 20
	ToastAutoHide         = 5 * time.Second
)
