// Package builder assembles ready-made campus graphs: deterministic
// fixtures for tests, and the demo campus the editor can preload.
//
// Every preset is a pure constructor over core: same inputs, identical
// graph. Presets never panic; impossible inputs surface as wrapped core
// sentinel errors, and the shipped presets are verified never to produce
// them.
package builder
