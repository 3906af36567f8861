// Package interact binds a risk dataset to the shapes of a loaded map document and
// tracks the hover and selection state driven by pointer events over those shapes.
//
// A Document is the event source: it enumerates its shapes and delivers enter,
// leave and activate callbacks per shape. The Binder subscribes to every shape whose
// label is present in the dataset and translates those callbacks into State updates.
// Rendering code reads State; it never writes it.
package interact
