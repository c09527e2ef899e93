// Package gen provides deterministic binding source generation for
// declared interfaces, dictionaries and global function sets.
//
// Generation approach uses text/template over typed per-unit-kind contexts.
// Every template is executed once against a sample context when loaded, so
// undefined substitution points are rejected before any unit is generated.
//
// Codegen pieces:
//   - TypeMapper: declared type to converter expression
//   - marshaller: arity dispatch scope issuing exactly one call
//   - return slots: slot declaration and result encoding per return kind
//   - assembler: sequences one callback body around the dispatch scope
//   - Generator: per-unit composition, registration tables, base wrapping
package gen
