// Command battlesim-demo runs a short scripted battle through the turn
// engine and prints the resulting weighted outcome tree turn by turn.
//
// It bootstraps a minimal move catalogue in a temp directory when no
// --data-dir is supplied (mirroring the server's zero-configuration
// bootstrap path), builds a two-Pokémon singles battle, and repeatedly
// calls engine.GenerateInstructions, applying the highest-probability
// branch each turn until one side faints or a turn limit is reached.
//
// When --metrics-port is nonzero it also serves a Prometheus /metrics
// endpoint for the turn counters accumulated along the way.
package main
