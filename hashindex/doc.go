// Package hashindex implements the airport metadata index: an open-addressed
// hash table with linear probing and full-rebuild resizing.
//
// Hashing & probing
//
//	home(key)   = (sum of the key's UTF-8 bytes) mod cap
//	probe(k)    = (home + k) mod cap, k = 0, 1, 2, ...
//
// The hash is deliberately simple; anagrams always collide and the probe
// sequence is what keeps lookups correct.
//
// Resizing
//
//   - Insert grows to 2·cap first when (n+1)/cap would exceed 3/4.
//   - Delete shrinks to max(1, cap/2) when n/cap drops below 1/2 and cap > 1.
//   - Both are full rebuilds: the slot slice is replaced, n is reset and
//     every entry is re-inserted in old slot order.
//
// Deletion without tombstones
//
//	A search stops at the first empty slot. To keep that sound, a delete that
//	does not shrink re-seats the entries following the gap up to the next
//	empty slot. No slot is ever marked "deleted".
//
// Complexity
//
//   - Insert, Search, Delete: O(1) expected, O(n) on a rebuild.
//
// Concurrency: none. Callers serialise access.
package hashindex
