// Package stf implements the Serialized Tree Format, a binary encoding for tree shaped data that needs no schema file.
//
// Leaves are primitive scalars, encoded with stf/encio. Branches are Nodes; values of user defined types that report a fixed Tag,
// and produce their own metadata and data. Every Node is written in the same self-delimiting envelope
//
//	Tag(4) MetaLen(4) Meta(MetaLen) DataLen(4) Data(DataLen)
//
// with every integer little-endian. Because both ranges are length-prefixed, a Decoder can find the end of any Node
// without knowing anything about its type; it reads the tag, looks it up in a Registry, and hands the registered
// Reconstructor exactly the metadata and data that were written. Reconstructors decode any nested Nodes themselves,
// using the Decoder they are given.
//
// Types must be registered before the first decode that might reference them, typically from init().
// The first decode through a Registry seals it; it is read-only from then on, and safe for any number of concurrent decodes.
//
// Array is the one generic composite provided. Its metadata is its element count, and its data is each element's full envelope.
// Scalar Nodes (Int32, String, ...) are pre-registered under reserved tags so that primitives can be array elements or roots.
//
// stf/stfile wraps an encoded Node in a checksummed document, and stf/inspect walks encoded bytes without decoding them.
package stf
