// Package fetch decodes a Kafka "Fetch" reply into a tree of borrowed
// views over the original wire buffer, and flattens one or more such
// replies into a single ordered stream of per-partition outcomes.
//
// Decoding never copies message keys or values: they are sub-slices of
// the buffer passed to Decode, or of a buffer produced while transparently
// expanding a GZIP- or Snappy-compressed message set. A Reply owns every
// buffer any of its borrowed views can reach; dropping the Reply releases
// them all.
package fetch
