// Package rhmap provides an open-addressing hash table with Robin Hood
// displacement, plus thin map and set views over it.
//
// The table keeps every key directly in one contiguous slot array and marks
// unoccupied slots with a caller-supplied sentinel key, so the sentinel must
// fall outside the real key space. Robin Hood insertion displaces occupants
// that sit closer to their home slot than the incoming key has probed, which
// bounds the worst-case probe length. The table grows (doubling, power of
// two) when probe chains get long at watermark occupancy, or when it is one
// slot short of full; it never shrinks and does not support deletion.
//
// [Table] is the core and doubles as a set via the [Set] alias. [Map] stores
// [Entry] pairs in a Table and lifts the caller's hash and equality to look
// only at the key half.
//
// Nothing here is safe for concurrent use; wrap access in a lock if the
// table is shared. Slot pointers returned by Find, Insert and At, and any
// running iteration, are invalidated whenever the table grows.
package rhmap
