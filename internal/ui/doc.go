package ui

// Package ui contains the Fyne desktop window. Blocking work runs in Actions on
// worker goroutines, which post Messages to a Relay. The window drains the
// relay on a fixed tick, folds each message into the Presenter state and
// renders that state. All UI strings are localized via Localization.
