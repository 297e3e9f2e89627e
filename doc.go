/*
Package hopscotch implements fixed-capacity hash map based on hopscotch
hashing.

Every key belongs to a small, fixed-size neighborhood of buckets around the
bucket its hash points to (the home bucket). Lookup only needs to scan that
neighborhood, unlike linear or quadratic probing where the scan length is
unbounded. When the neighborhood is full, an empty bucket found outside of it
is moved closer by displacing entries which may legally live there, until it
lands inside the neighborhood.

For more theory about the subject please see the original paper by Herlihy,
Shavit and Tzafrir: https://people.csail.mit.edu/shanir/publications/disc2008_submission_98.pdf

This implementation differs from the paper in a few ways:
1) Neighborhoods are centered on the home bucket and keep the same width near
the ends of the bucket array (there is no wraparound).
2) The map never grows. If displacement can not move an empty bucket into the
neighborhood, the entry is put into an overflow chain rooted at the home
bucket. The chain is a doubly linked list of relative offsets stored inside
the bucket array itself, so no memory is allocated after construction.

Values are opaque references. The map never copies, inspects or releases
them: callers own the data values refer to and must keep it alive while it is
stored in the map. Remove and overwrite only hand the old reference back.

Map is not safe for concurrent use. Callers must serialize all operations,
e.g. by guarding the whole map with a single mutex.
*/
package hopscotch
