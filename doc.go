// Package savekit classifies opaque byte buffers, typically dumps from
// handheld or console storage media, into one of several known structured
// binary formats and hands back a typed result for downstream editors.
//
// Its job is recognition, not parsing: it decides which format family a
// buffer plausibly belongs to, then defers to the per-family constructor
// packages to build the typed object.
//
// # Detection Pipeline
//
// Detection runs a fixed priority chain of independent, stateless
// recognizers against one buffer and returns the first confident match:
//
//   - save containers (github.com/retrosave/savekit/container)
//   - memory-card images (github.com/retrosave/savekit/memcard)
//   - single entity records (github.com/retrosave/savekit/entity)
//   - concatenated box dumps (split against a reference container)
//   - battle videos (github.com/retrosave/savekit/replay)
//   - event gifts (github.com/retrosave/savekit/gift)
//
// A size gate rejects buffers outside [MinSize, MaxSize] before any
// recognizer runs, with named exceptions for the oversized console
// container and legal memory-card image lengths.
//
// # Basic Usage
//
//	res := savekit.DetectFromPath("dump.sav", nil)
//	switch res.Kind {
//	case savekit.KindSaveContainer:
//	    fmt.Println(res.Container.Name, res.Container.Generation)
//	case savekit.KindNone:
//	    fmt.Println("unrecognized")
//	}
//
// Context-sensitive detection takes a reference container:
//
//	ref := savekit.NewReference(res.Container)
//	boxes := savekit.DetectFromBytes(raw, savekit.NoHint, ref)
//
// All entry points are pure over their inputs: no recognizer mutates the
// buffer, no state is retained across calls, and detection calls may run
// concurrently across independent buffers without coordination. Failures,
// including I/O errors at the path entry point, fold into a KindNone
// result; detection never returns an error to the caller.
package savekit
