package ytdigest

import (
	"ytdigest/internal/digest"
	"ytdigest/internal/transcribe"
	"ytdigest/youtube"
)

// Error handling types exported for library users.
//
// From youtube package:
//   - youtube.ErrMissingAPIKey: search attempted without a YouTube key
//   - youtube.ErrYtdlpNotInstalled: yt-dlp binary not found
//   - youtube.ErrAudioNotFound: yt-dlp finished without producing audio
//   - youtube.ErrNetworkTimeout: download timed out
//   - youtube.SearchError: error during search
//   - youtube.DownloadError: error during audio download
//
// From digest package:
//   - digest.ErrInvalidInput: malformed digest request
//   - digest.ErrSizeViolation: audio outside the accepted size range
//   - digest.ItemError: failure of one digest item

// Type aliases for convenient error handling.
type (
	// SearchError wraps errors during video search.
	SearchError = youtube.SearchError
	// DownloadError wraps errors during audio download.
	DownloadError = youtube.DownloadError
	// ItemError records which stage of a digest item failed.
	ItemError = digest.ItemError
	// SizeError reports an audio file outside the accepted size range.
	SizeError = digest.SizeError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrInvalidInput indicates a malformed digest request.
	ErrInvalidInput = digest.ErrInvalidInput
	// ErrSizeViolation matches every SizeError.
	ErrSizeViolation = digest.ErrSizeViolation
	// ErrMissingYouTubeKey indicates search was attempted without a key.
	ErrMissingYouTubeKey = youtube.ErrMissingAPIKey
	// ErrMissingOpenAIKey indicates transcription was attempted without a key.
	ErrMissingOpenAIKey = transcribe.ErrMissingAPIKey
	// ErrYtdlpNotInstalled indicates yt-dlp binary was not found.
	ErrYtdlpNotInstalled = youtube.ErrYtdlpNotInstalled
	// ErrAudioNotFound indicates yt-dlp produced no audio file.
	ErrAudioNotFound = youtube.ErrAudioNotFound
	// ErrNetworkTimeout indicates a download timed out.
	ErrNetworkTimeout = youtube.ErrNetworkTimeout
)
