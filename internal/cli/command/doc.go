// Package command provides CLI command definitions for proofgate.
//
// It uses urfave/cli/v2 for command parsing. The CLI drives the full
// applicant challenge pipeline against a remote service and offers
// local helpers:
//
//   - solve: fetch the challenge, compute the secret, submit it
//   - decode: ROT13-transcode text from stdin or a flag
//   - history: inspect journaled solve attempts
//
// Global flags carry the applicant identity, server address, and
// output preferences; each has an environment variable fallback.
//
// @design DS-0600
package command
