// Package phragmenengine implements multi-winner approval elections inside
// the election-core context.
//
// The module owns the Sequential Phragmén tally (ballot indexing, the
// per-round scoring loop, and load/weight accounting), run-record reads for
// reporting, and the transport mapping around them. Business rules live in
// the domain layer; infrastructure stays behind ports and adapters.
package phragmenengine
