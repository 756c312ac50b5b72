// Package slate provides the geometry core of a small 2D application
// framework for Go.
//
// # Overview
//
// The root package models the placement of 2D objects: a [Point] vector
// type, a [Rect] with named anchors (topleft, center, midbottom, ...), and
// a [Transform] that tracks position, rotation, and uniform scale while
// keeping every anchor consistent under arbitrary combinations of move,
// rotate, and scale operations.
//
// Framework layers live in subpackages:
//   - surface: pixel surfaces and transformable sprites
//   - text: font faces, measurement, and labels
//   - app: window configuration and the run loop over Ebitengine
//   - audio: sound loading and playback
//   - assets: resource loading and hot reload
//
// # Quick Start
//
//	tr := slate.NewTransform(slate.StaticSize{W: 64, H: 32})
//
//	tr.SetCenter(slate.Pt(160, 120))
//	if err := tr.SetRotation(45, nil); err != nil {
//	    log.Fatal(err)
//	}
//	size := tr.Size()
//
// # Coordinate System
//
// Standard computer graphics coordinates: origin at top-left, X increases
// right, Y increases down. Transform angles are in degrees, normalized to
// [0, 360); Point rotation helpers exist for both degrees and radians.
//
// # Concurrency
//
// A Transform is owned by a single goroutine; the package provides no
// internal locking. SetLogger is the only function safe to call
// concurrently with anything else.
package slate

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
