package ui

// Package ui contains the Fyne-based desktop user interface of the editor.
// It renders track headers, the clip canvas with group selection, and the
// mix panel driven by mixstack.Controller. All UI strings are localized via
// Localization.
