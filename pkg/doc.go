// Package pkg provides the core libraries for Archigen diagram generation.
//
// # Overview
//
// Archigen turns layered architecture model documents into PlantUML
// diagrams, rendered images, and Archi-compatible XML models. The pkg
// directory is organized into five main areas:
//
//  1. [model] - The in-memory diagram: elements, relationships, visibility
//  2. [render] - Text rendering (PlantUML) and arrow composition
//  3. [layout] - Deterministic position and bendpoint computation
//  4. [export] - Archi XML model export and validation
//  5. [pipeline] - Orchestration (render → export → rasterize) with caching
//
// # Architecture
//
// The typical data flow through Archigen:
//
//	Model Document (JSON)
//	         ↓
//	    [io] package (decode + build diagram)
//	         ↓
//	    [model] package (graph structure + visibility)
//	         ↓
//	    [render/plantuml] and [export/archixml] (text + XML)
//	         ↓
//	    PUML/XML/PNG/SVG output
//
// Supporting packages: [arrow] composes relationship arrows, [i18n]
// translates layer and relationship names, [layout] places elements,
// [cache] stores results, [renderer] drives the PlantUML jar, and
// [errors] carries coded errors end to end.
package pkg
