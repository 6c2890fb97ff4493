// Package plan turns validated settings and probed media facts into the
// single ffmpeg invocation a run executes.
//
// It resolves optional clip boundaries into absolute times, synthesizes the
// video and audio filter chains, chooses the audio-mix topology, and
// assembles the final argument sequence from typed, ordered groups. All of
// it is pure computation; nothing here touches a process or the filesystem.
package plan
