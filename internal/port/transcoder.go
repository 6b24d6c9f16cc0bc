package port

import "context"

// Transcoder rescales a local input file into a local output file.
type Transcoder interface {
	Transcode(ctx context.Context, inputPath, outputPath string) error
}
