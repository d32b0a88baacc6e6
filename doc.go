// Package ytdigest builds daily digests of recent YouTube discussion about a topic.
//
// A digest run searches YouTube for recent podcasts, interviews and news about a
// topic and a set of organizations, downloads the audio of each result, transcribes
// it, and asks a language model for a short bullet-point summary.
//
// Overview
//
// The service exposes one operation through its HTTP API:
//
//   - POST /daily_digest: run a digest and return a JSON array of entries
//   - GET /health: report which credentials are configured
//   - GET /metrics: plain-text operation counters
//
// Quick Start
//
// Run a digest from Go:
//
//	ctx := context.Background()
//	cfg, err := ytdigest.LoadConfig()
//	if err != nil {
//		log.Fatal(err)
//	}
//	svc, err := ytdigest.New(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	entries := svc.Pipeline.Run(ctx, ytdigest.NewQuery("shipping industry", nil))
//	for _, e := range entries {
//		fmt.Println(e.Title, e.Summary)
//	}
//
// Serve the HTTP API:
//
//	log.Fatal(http.ListenAndServe(cfg.Addr, svc.Handler()))
//
// Configuration
//
// Configuration comes from the environment. A .env file in the working
// directory, when present, overrides the process environment.
//
//   - OPENAI_API_KEY: enables transcription and summarization
//   - YOUTUBE_API_KEY: enables search
//   - OPENAI_BASE_URL: OpenAI-compatible API base URL
//   - DIGEST_SUMMARY_MODEL: chat model for summaries (default gpt-4o-mini)
//   - DIGEST_TRANSCRIPTION_MODEL: speech-to-text model (default whisper-1)
//   - DIGEST_YTDLP_PATH: path to yt-dlp executable
//   - DIGEST_YTDLP_TIMEOUT: timeout for one download (default 10m)
//   - DIGEST_SCRATCH_DIR: directory for downloaded audio
//   - DIGEST_ADDR: listen address (default :5000)
//   - DIGEST_HTTP_TIMEOUT: timeout for outbound API calls (default none)
//   - DIGEST_LOG_LEVEL: debug, info, warn or error
//
// A missing key does not stop the service. Without a YouTube key every digest is
// empty; without an OpenAI key every item fails transcription.
//
// Error Handling
//
// A digest run never fails as a whole. Each item that fails carries an error
// message in its entry. Typed errors are available for library users:
//
//	var itemErr *ytdigest.ItemError
//	if errors.As(err, &itemErr) {
//		fmt.Printf("%s failed at %s\n", itemErr.Kind(), itemErr.Stage)
//	}
//
// Dependencies
//
// ytdigest requires yt-dlp to be installed and available in PATH or specified via
// the DIGEST_YTDLP_PATH environment variable.
//
// Install yt-dlp: https://github.com/yt-dlp/yt-dlp
package ytdigest
