package platform

// Package platform contains OS/platform integration and external tooling glue:
// output file naming, filesystem helpers, playlist expansion via ytdlp, tool
// lookup and OS open/reveal.
