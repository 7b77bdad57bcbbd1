// Package iioxml implements the XML description codec: it turns a
// textual IIO context description into a model.Context and renders a
// Context (or a single Device or Channel) back into the same schema.
//
// # Schema
//
// The document is a three-level element tree:
//
//	<context description=... version-major=... version-minor=... version-git=...>
//	  <context-attribute name=... value=... />
//	  <device id=... name=... label=...>
//	    <channel id=... name=... type="input|output">
//	      <scan-element index=... format=... scale=... />
//	      <attribute name=... filename=... />
//	    </channel>
//	    <attribute name=... />
//	    <buffer-attribute name=... />
//	    <debug-attribute name=... />
//	  </device>
//	</context>
//
// The schema is forward-compatible: unknown elements and attributes
// are reported as debug diagnostics and skipped, never errors. Missing
// required fields (device and channel ids, attribute names) abort the
// whole build; no partial Context is ever returned.
//
// # Round trip
//
// Encoding is the algebraic inverse of decoding: rebuilding a context
// from its own encoded description yields a Context equal to the
// original in every modeled field. Cloning a context is defined as
// exactly that loop (see FromContext).
//
// # Format mini-language
//
// Scan-element sample layouts use a compact descriptor, for example
// "le:s12/16>>4" or "be:u10/16X2>>0":
//
//	<endian>e:<sign><bits>/<storage>[X<repeat>]>><shift>
//
// with endian 'b' or 'l', sign 's' or 'u' (upper-case asserts a fully
// defined sample), and an optional repeat clause. DecodeFormat and
// EncodeFormat implement the two directions.
package iioxml
