// Package io provides JSON import and export for diagram documents.
//
// # Overview
//
// A document is the serialized form of a diagram: its elements,
// relationships, and visibility controls. The format is designed for:
//
//   - Driving the CLI and the HTTP API from the same file
//   - Storing architecture models next to the code they describe
//   - Round-trip preservation: import, adjust visibility, export, re-import
//
// # JSON Format
//
// The format has a required "elements" array and an optional
// "relationships" array:
//
//	{
//	  "title": "Banking",
//	  "elements": [
//	    {"id": "customer", "name": "Customer", "element_type": "Business_Actor"},
//	    {"id": "portal", "name": "Portal", "element_type": "Application_Component"}
//	  ],
//	  "relationships": [
//	    {"id": "r1", "from_element": "portal", "to_element": "customer",
//	     "relationship_type": "Serving"}
//	  ]
//	}
//
// # Element Fields
//
// Required:
//   - id: Unique string identifier
//   - name: Display label
//   - element_type: Catalog type (e.g. "Business_Actor")
//
// Optional:
//   - layer: Layer name (derived from the element type if omitted)
//   - aspect, description, stereotype, color, tags
//
// # Visibility
//
// Top-level "hide_elements", "remove_elements", "hide_tags",
// "remove_tags", and "restore_tags" arrays are applied to the diagram
// after construction, followed by the "hide_unlinked" and
// "remove_unlinked" switches. Hidden elements keep their layout slot;
// removed elements vanish entirely.
//
// # Import
//
// Use [ImportJSON] to read a document from a file path, or [ReadJSON]
// to read from any io.Reader. [Document.Diagram] builds the in-memory
// diagram and reports the first structural problem (duplicate IDs,
// dangling relationship endpoints) with a coded error.
//
// # Export
//
// Use [FromDiagram] to capture a diagram back into a document, then
// [ExportJSON] or [WriteJSON] to serialize it. Per-element visibility
// is preserved through the hide/remove element lists; tag-based rules
// are flattened into their per-element effect.
package io
