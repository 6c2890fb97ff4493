// Package pipeline wires the processing stages into one run: probe the
// input, resolve timing, build the filter plan, assemble the command, and
// supervise the transcode. There is no retry and no partial-failure
// handling; whatever stage fails first ends the run with its error.
package pipeline
