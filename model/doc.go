// Package model provides the document object model produced by the
// converter and its HTML rendering.
//
// The model is a small semantic tree. A [Document] holds an ordered list of
// [Element] values, one per body element of the source document:
//
//   - [Paragraph] - a paragraph of [RunElement] values ([TextRun], [ImageRun])
//   - [BorderNumber] - a margin number ("Randnummer") annotation
//   - [Table] - rows of [TableColumn] cells holding paragraphs
//   - [Unrecognized] - a placeholder for input that could not be converted
//
// # Rendering
//
// Every node renders itself through an HTML method, recursively top-down:
//
//	html := model.RenderHTML(elements)
//
// Rendering is pure. Rendering the same tree twice yields identical output.
//
// # Styles
//
// [TextStyle] and [Alignment] values stored on nodes are already resolved
// against named styles and direct formatting; the renderer never looks at
// the source document.
package model
