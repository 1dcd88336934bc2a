// Package pkg provides the core libraries for Bricktable model composition.
//
// # Overview
//
// Bricktable composes LDraw table models: a baseplate grid carrying
// numbered minifig groups, tiled frames, and plate-pixel name texts. The
// pkg directory is organized into four main areas:
//
//  1. [scene] - Domain logic (coordinates, placements, templates, layouts)
//  2. [catalog] / [bom] - Part knowledge (lookup tables, classification, reporting)
//  3. [pipeline] - Orchestration (config → compose → export)
//  4. [errors] / [buildinfo] / [observability] - Ambient support
//
// # Architecture
//
// The typical data flow through Bricktable:
//
//	Scene config (TOML) + minifig template (.ldr)
//	         ↓
//	    [scene/template] package (load + normalize)
//	         ↓
//	    [scene/layout] package (baseplates, groups, frames, texts)
//	         ↓
//	    [pipeline] package (sections, header, atomic export)
//	         ↓
//	    .ldr model file
//
// The [bom] package reads finished models back and reports the parts
// they need, grouped by section.
package pkg
