// Package model holds the Declaration Model: the parsed, read-only description
// of the interfaces, dictionaries and global function sets that bindings are
// generated for.
//
// A declaration file is YAML:
//
//	version: v1
//	name: point
//	units:
//	  - kind: interface
//	    name: Point
//	    parent: EventTarget
//	    methods:
//	      - name: constructor
//	        params:
//	          - {name: x, type: double}
//	          - {name: y, type: double}
//	      - name: move
//	        params:
//	          - {name: x, type: int32}
//	          - {name: y, type: int32}
//	          - {name: z, type: int32, optional: true}
//	    properties:
//	      - {name: x, type: double, readonly: true}
//	      - {name: tags, type: "sequence<DOMString>?"}
//	  - kind: dictionary
//	    name: PointInit
//	    properties:
//	      - {name: x, type: double}
//	  - kind: global_functions
//	    name: Console
//	    functions:
//	      - name: parse
//	        params:
//	          - {name: input, type: DOMString}
//	        returns: DOMString
//
// Type strings are IDL spellings: primitive names (int32, int64, double,
// boolean, DOMString, object, function, any, void), sequence<T>, a trailing
// "?" for nullable, and any other identifier as a named type.
package model
