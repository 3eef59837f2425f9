// Package render groups the text renderers for diagram output.
//
// The [plantuml] subpackage renders a diagram as a layered PlantUML
// document: element macros, composed relationship arrows, layer and
// aspect grouping, theme skinparams, and the layer legend. The
// resulting text is the input for image rasterization (see the
// renderer package).
package render
