package assembler

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Assemble builds one video from index-aligned visual and audio assets.
// Each segment is encoded on its own in a per-run work directory, the
// segments are joined stream-copy with the concat demuxer so per-segment
// frames are not re-encoded, and the result is published to outPath by
// rename only after it is complete, so a failed run never leaves a
// partial file at the output path.
func (a *implAssembler) Assemble(ctx context.Context, visuals, audios []string, outPath string) (string, error) {
	segments, err := a.plan(ctx, visuals, audios)
	if err != nil {
		return "", err
	}

	a.logger.Info(ctx, "Assembling %d segments (total %.2fs) at %d fps",
		len(segments), totalDuration(segments), a.frameRate)

	if err := os.MkdirAll(a.tempDir, 0755); err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	workDir, err := os.MkdirTemp(a.tempDir, "assemble-*")
	if err != nil {
		return "", fmt.Errorf("create work dir: %w", err)
	}
	a.tracker.Track(workDir)

	segmentPaths := make([]string, 0, len(segments))
	for i, seg := range segments {
		segPath := filepath.Join(workDir, fmt.Sprintf("segment_%03d.mp4", i+1))
		if err := a.encodeSegment(ctx, seg, segPath); err != nil {
			return "", fmt.Errorf("segment %d: %w", i+1, err)
		}
		a.tracker.Track(segPath)
		segmentPaths = append(segmentPaths, segPath)
	}

	listPath, err := writeConcatList(workDir, segmentPaths)
	if err != nil {
		return "", fmt.Errorf("write concat list: %w", err)
	}
	a.tracker.Track(listPath)

	tmpOut := filepath.Join(workDir, "output.mp4")
	if _, err := a.executor.Execute(ctx, "ffmpeg",
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c", "copy",
		tmpOut,
	); err != nil {
		return "", fmt.Errorf("concat segments: %w", err)
	}

	info, err := os.Stat(tmpOut)
	if err != nil {
		return "", fmt.Errorf("assembled video missing: %w", err)
	}
	if info.Size() == 0 {
		return "", fmt.Errorf("assembled video is empty: %s", tmpOut)
	}

	if err := publish(tmpOut, outPath); err != nil {
		return "", err
	}

	a.logger.Info(ctx, "Video assembled: %s", outPath)
	return outPath, nil
}

// encodeSegment loops one still image for the audio's duration at the
// uniform output frame rate. Dimensions are rounded down to even values
// for yuv420p. ffmpeg runs as a bounded subprocess, so decoder state is
// released when it exits regardless of later failures.
func (a *implAssembler) encodeSegment(ctx context.Context, seg segment, segPath string) error {
	fps := strconv.Itoa(a.frameRate)
	_, err := a.executor.Execute(ctx, "ffmpeg",
		"-y",
		"-loop", "1",
		"-framerate", fps,
		"-i", seg.visual,
		"-i", seg.audio,
		"-t", strconv.FormatFloat(seg.duration, 'f', -1, 64),
		"-vf", "scale=trunc(iw/2)*2:trunc(ih/2)*2",
		"-r", fps,
		"-c:v", "libx264",
		"-tune", "stillimage",
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-b:a", "192k",
		"-shortest",
		segPath,
	)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// writeConcatList generates the file list the concat demuxer joins in
// index order.
func writeConcatList(workDir string, segmentPaths []string) (string, error) {
	f, err := os.CreateTemp(workDir, "concat-*.txt")
	if err != nil {
		return "", err
	}
	defer f.Close()

	for _, p := range segmentPaths {
		absPath, err := filepath.Abs(p)
		if err != nil {
			return "", err
		}
		if _, err := fmt.Fprintf(f, "file '%s'\n", absPath); err != nil {
			return "", err
		}
	}

	return f.Name(), nil
}

// publish moves the finished video into place, copying when rename
// crosses filesystems. The copy is staged next to outPath and renamed
// in, so a failure mid-copy never leaves a partial file at the output
// path.
func publish(tmpOut, outPath string) error {
	if err := os.Rename(tmpOut, outPath); err == nil {
		return nil
	}

	src, err := os.Open(tmpOut)
	if err != nil {
		return fmt.Errorf("publish output: %w", err)
	}
	defer src.Close()

	staging, err := os.CreateTemp(filepath.Dir(outPath), ".publish-*")
	if err != nil {
		return fmt.Errorf("publish output: %w", err)
	}
	defer os.Remove(staging.Name())

	if _, err := io.Copy(staging, src); err != nil {
		staging.Close()
		return fmt.Errorf("publish output: %w", err)
	}
	if err := staging.Close(); err != nil {
		return fmt.Errorf("publish output: %w", err)
	}
	if err := os.Rename(staging.Name(), outPath); err != nil {
		return fmt.Errorf("publish output: %w", err)
	}
	return os.Remove(tmpOut)
}
