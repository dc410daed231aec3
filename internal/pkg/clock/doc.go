// Package clock lets dispatch latency be measured against an injectable time
// source.
package clock
