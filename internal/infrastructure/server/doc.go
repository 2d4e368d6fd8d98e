// Package server assembles the reference store, generator, providers and
// router into a runnable HTTP server.
package server
