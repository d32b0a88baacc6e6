package youtube

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultYtdlpPath    = "yt-dlp"
	defaultYtdlpTimeout = 10 * time.Minute

	// audioFormat prefers formats the transcription API accepts without conversion.
	audioFormat = "bestaudio[ext=m4a]/bestaudio[ext=mp3]/bestaudio"
)

// audioExtensions are the container extensions yt-dlp may produce for audioFormat.
var audioExtensions = []string{".m4a", ".mp3", ".webm", ".opus", ".ogg", ".wav"}

// AudioDownloader fetches the audio track of a video into a local file.
type AudioDownloader interface {
	// DownloadAudio downloads the audio for videoURL into dir, naming the file
	// name.<ext>. It returns the path of the downloaded file.
	DownloadAudio(ctx context.Context, videoURL, dir, name string) (string, error)
}

// Downloader handles audio downloads using yt-dlp.
type Downloader struct {
	// YtdlpPath is the path to the yt-dlp executable.
	YtdlpPath string
	// Timeout is the maximum duration of a single download. Defaults to 10 minutes.
	Timeout time.Duration
}

// NewDownloader creates a new Downloader with default settings.
func NewDownloader() *Downloader {
	return &Downloader{
		YtdlpPath: defaultYtdlpPath,
		Timeout:   defaultYtdlpTimeout,
	}
}

// DownloadAudio downloads the best available audio stream for videoURL.
func (d *Downloader) DownloadAudio(ctx context.Context, videoURL, dir, name string) (string, error) {
	if videoURL == "" {
		return "", &DownloadError{URL: videoURL, Err: ErrInvalidURL}
	}
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	args := []string{
		"-f", audioFormat,
		"-o", filepath.Join(dir, name+".%(ext)s"),
		"--no-playlist",
		"--quiet",
		"--no-warnings",
		"--print", "after_move:filepath", // Print final path after download
		videoURL,
	}

	timeout := d.Timeout
	if timeout <= 0 {
		timeout = defaultYtdlpTimeout
	}
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, d.path(), args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", &DownloadError{URL: videoURL, Err: ErrYtdlpNotInstalled}
		}
		if cmdCtx.Err() == context.DeadlineExceeded {
			return "", &DownloadError{URL: videoURL, Err: ErrNetworkTimeout}
		}
		return "", &DownloadError{
			URL:    videoURL,
			Stderr: strings.TrimSpace(stderr.String()),
			Err:    fmt.Errorf("yt-dlp failed: %w", err),
		}
	}

	if path := printedPath(stdout.String()); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	// yt-dlp did not report a usable path; look for anything carrying our name
	if path, ok := findAudioFile(dir, name); ok {
		return path, nil
	}

	return "", &DownloadError{URL: videoURL, Err: ErrAudioNotFound}
}

func (d *Downloader) path() string {
	if d.YtdlpPath != "" {
		return d.YtdlpPath
	}
	return defaultYtdlpPath
}

// printedPath extracts the final file path from yt-dlp's --print output.
// The output may contain multiple lines; the filepath is the last non-empty line.
func printedPath(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return ""
}

// findAudioFile looks in dir for name.<ext> with a known audio extension.
func findAudioFile(dir, name string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(dir, name+".*"))
	if err != nil {
		return "", false
	}
	for _, m := range matches {
		ext := strings.ToLower(filepath.Ext(m))
		for _, want := range audioExtensions {
			if ext == want {
				return m, true
			}
		}
	}
	return "", false
}
