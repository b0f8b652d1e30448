package model

// Package model defines domain data structures shared across the app: stream
// descriptors, fetched video info, download jobs, playlist entries and the
// error kinds surfaced to the UI.
