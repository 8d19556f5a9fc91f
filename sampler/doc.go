// Package sampler drives a complete sampling run: it opens the input, detects its dialect and
// header, streams the body Records through a reservoir, and writes the header followed by the
// sample in the input's own dialect.
package sampler
