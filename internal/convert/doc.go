package convert

// Package convert runs ffmpeg to transcode a downloaded stream or to mux a
// video-only stream with an audio-only stream. Inputs are temporary artifacts
// and are deleted after every run, successful or not.
