package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// MediaInfo holds duration and codec information from ffprobe.
type MediaInfo struct {
	Duration float64
	Codec    string
}

// Available returns true if ffprobe is on the PATH.
func Available() bool {
	_, err := exec.LookPath("ffprobe")
	return err == nil
}

// probeOutput mirrors ffprobe JSON structure.
type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
	Streams []struct {
		CodecName string `json:"codec_name"`
	} `json:"streams"`
}

// ProbeMedia uses ffprobe to get the container duration and first stream codec.
func ProbeMedia(ctx context.Context, path string) (*MediaInfo, error) {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return nil, fmt.Errorf("ffprobe not found: %w", err)
	}

	cmd := exec.CommandContext(ctx,
		"ffprobe",
		"-v", "error",
		"-show_entries", "stream=codec_name:format=duration",
		"-of", "json",
		path,
	)

	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}
	return parseProbe(out)
}

func parseProbe(out []byte) (*MediaInfo, error) {
	var probe probeOutput
	if err := json.Unmarshal(out, &probe); err != nil {
		return nil, fmt.Errorf("ffprobe JSON parse error: %w", err)
	}

	dur, err := strconv.ParseFloat(probe.Format.Duration, 64)
	if err != nil || dur < 0 {
		dur = 0
	}

	codec := "N/A"
	if len(probe.Streams) > 0 && probe.Streams[0].CodecName != "" {
		codec = probe.Streams[0].CodecName
	}

	return &MediaInfo{Duration: dur, Codec: codec}, nil
}

// ProbeDuration returns the media duration in seconds. Zero means ffprobe
// could not tell.
func ProbeDuration(ctx context.Context, path string) (float64, error) {
	info, err := ProbeMedia(ctx, path)
	if err != nil {
		return 0, err
	}
	return info.Duration, nil
}

// IsVideoExtension returns true for common video file extensions.
func IsVideoExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".mp4", ".mkv", ".mov", ".avi", ".flv", ".webm":
		return true
	}
	return false
}

// IsAudioExtension returns true for common audio file extensions.
func IsAudioExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".mp3", ".m4a", ".aac", ".wav", ".flac", ".ogg", ".opus":
		return true
	}
	return false
}

var mediaExtensions = []string{
	".mp4", ".mkv", ".webm", ".mov", ".avi", ".flv",
	".m4a", ".mp3", ".opus", ".ogg", ".wav", ".flac", ".aac",
}

// FindMedia looks for a video or audio file next to a caption file. Both
// "talk.srt" and "talk.en.srt" match "talk.mp4".
func FindMedia(captionPath string) (string, bool) {
	dir := filepath.Dir(captionPath)
	base := strings.TrimSuffix(filepath.Base(captionPath), filepath.Ext(captionPath))

	candidates := []string{base}
	if lang := filepath.Ext(base); lang != "" {
		candidates = append(candidates, strings.TrimSuffix(base, lang))
	}

	for _, name := range candidates {
		for _, ext := range mediaExtensions {
			path := filepath.Join(dir, name+ext)
			if stat, err := os.Stat(path); err == nil && !stat.IsDir() {
				return path, true
			}
		}
	}
	return "", false
}

// LogMediaInfo logs file size and media information.
func LogMediaInfo(ctx context.Context, path string) *MediaInfo {
	stat, err := os.Stat(path)
	if err != nil {
		slog.Warn("cannot stat file", "path", path, "err", err)
		return nil
	}

	sizeMB := float64(stat.Size()) / (1024 * 1024)
	msg := fmt.Sprintf("media file: %s, %.2f MB", filepath.Base(path), sizeMB)

	info, err := ProbeMedia(ctx, path)
	if err != nil {
		slog.Warn("cannot probe media", "path", path, "err", err)
		return nil
	}

	minutes := int(info.Duration) / 60
	seconds := int(info.Duration) % 60
	msg += fmt.Sprintf(" | duration: %02d:%02d | codec: %s", minutes, seconds, info.Codec)

	slog.Info(msg)
	return info
}
