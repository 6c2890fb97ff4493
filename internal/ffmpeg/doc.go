// Package ffmpeg wraps the external ffmpeg binary behind a small client.
//
// It covers the two invocations a run needs: a probe that scrapes duration
// and frame rate from the diagnostic banner, and a supervised transcode that
// streams diagnostic output and extracts time-progress markers. The scraping
// is deliberately coupled to ffmpeg's text format; a format change surfaces
// as a missing-marker error, never as a default value.
package ffmpeg
