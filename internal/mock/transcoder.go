package mock

import "context"

// Transcoder implements the transcoder port for tests.
type Transcoder struct {
	// captured inputs
	InputPath  string
	OutputPath string

	// OnTranscode, when set, runs before the error is returned so tests
	// can observe state mid-pipeline.
	OnTranscode func()

	TranscodeErr    error
	TranscodeCalled bool
}

func (m *Transcoder) Transcode(ctx context.Context, inputPath, outputPath string) error {
	m.TranscodeCalled = true
	m.InputPath = inputPath
	m.OutputPath = outputPath
	if m.OnTranscode != nil {
		m.OnTranscode()
	}
	return m.TranscodeErr
}
