// Package stream resolves a video URL into its downloadable stream variants.
//
// A StreamProvider talks to the streaming site and yields a Source. The
// Fetcher reduces a Source to the qualities shown to the user and wraps it in
// a Session, which is the only handle the download orchestrator accepts.
package stream
