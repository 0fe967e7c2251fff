// Package store holds the live property values of one host object and keeps
// the host's persisted string in sync with them.
//
// A Store is created in the declared phase. The first Get or Set asks the
// host for its descriptors, seeds every descriptor with its default, and
// decodes the host's persisted string over the defaults. Every Set
// re-encodes the whole store and hands the result back to the host.
//
// A Store is not safe for concurrent use.
package store
