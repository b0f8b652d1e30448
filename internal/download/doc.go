package download

// Package download implements the download pipeline on top of a fetched
// stream.Session. It selects the stream for the requested quality, writes
// temporary artifacts, and hands them to the media processor for conversion
// or merging. Job progress is propagated to the UI through a callback.
