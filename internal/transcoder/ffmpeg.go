package transcoder

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"video-processor/internal/port"
)

// FFmpeg shells out to the ffmpeg binary to rescale a video to a fixed
// target height, preserving aspect ratio (width -1).
type FFmpeg struct {
	bin          string
	targetHeight int
}

// compile-time check: *FFmpeg must satisfy port.Transcoder
var _ port.Transcoder = (*FFmpeg)(nil)

func NewFFmpeg(bin string, targetHeight int) *FFmpeg {
	return &FFmpeg{bin: bin, targetHeight: targetHeight}
}

func (f *FFmpeg) Transcode(ctx context.Context, inputPath, outputPath string) error {
	args := f.buildArgs(inputPath, outputPath)

	cmd := exec.CommandContext(ctx, f.bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if line := lastLine(stderr.String()); line != "" {
			return fmt.Errorf("ffmpeg failed: %s: %w", line, err)
		}
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	return nil
}

func (f *FFmpeg) buildArgs(inputPath, outputPath string) []string {
	return []string{
		"-y",
		"-i", inputPath,
		"-vf", fmt.Sprintf("scale=-1:%d", f.targetHeight),
		outputPath,
	}
}

// lastLine returns the last non-empty line of ffmpeg's stderr, which is
// where ffmpeg puts the actual failure reason.
func lastLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}
