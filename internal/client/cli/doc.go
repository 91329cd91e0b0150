// Package cli implements the interactive shopsync point-of-sale console.
//
// The REPL accepts short commands (sale, pending, sync, products, ...) and
// dispatches them to the client services. Sales recorded while the backend is
// unreachable are queued locally and replayed once connectivity returns.
package cli
