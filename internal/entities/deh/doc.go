// Package deh holds the records a DeHackEd patch edits: things, frames,
// weapons, ammo, sounds and the misc globals, plus the edit requests that
// carry patch values into a conversion session.
package deh
