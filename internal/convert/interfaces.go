package convert

import "context"

// Processor defines the interface for the external media processor.
// Both operations block until the tool exits and always remove their inputs.
type Processor interface {
	Convert(ctx context.Context, inputPath, outputPath string) error
	Merge(ctx context.Context, videoPath, audioPath, outputPath string) error
}
