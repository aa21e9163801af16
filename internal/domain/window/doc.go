// Package window consumes the window model produced by the UI schema
// parser.
//
// Source is the seam where an external parser plugs in. FileSource reads
// the model serialized as JSON or YAML:
//
//	windows:
//	  - id: main
//	    properties: {type: GtkWindow, width: 400}
//	    signals:
//	      SaveBtn: {clicked: MenuSave}
//	    content: <div class="SaveBtn">...</div>
//
// Windows keep document order; the first one is the root window. Every
// model is validated before it reaches code generation.
package window
