// Package main provides the entry point for proofgate-cli.
//
// The CLI drives the applicant challenge end to end:
//
//   - solve: fetch, decode, hash, and submit the challenge
//   - decode: local ROT13 transcoding of arbitrary text
//   - history: inspect the local attempt journal
//
// Usage:
//
//	proofgate [command] [flags]
//	proofgate -n "Ada Lovelace" -e ada@example.com solve
//	proofgate decode --text "Uryyb, Jbeyq!"
//
// @design DS-0601
package main
