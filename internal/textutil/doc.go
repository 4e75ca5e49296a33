// Package textutil provides small text helpers shared by the CLI and the show
// processor: show title to URL slug conversion and a generic conditional.
package textutil
