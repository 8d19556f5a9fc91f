// Package jsonl parses JSON Lines data into Records. This parser uses https://github.com/tidwall/gjson to
// validate lines and, optionally, to project each line onto a set of columns named by gjson paths.
package jsonl
