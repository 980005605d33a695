// Package symtab implements the string pool and symbol hash table.
//
// Byte strings are interned into stable string numbers. Every interned
// string is tagged with a StrIlk, and the same bytes interned under two
// ilks occupy two hash slots that share one string number. Hash slots are
// addressed by HashPointer; collisions are chained through slots taken
// from the top of the table downward.
//
// Neither structure locks. A run owns one pool and one table.
package symtab
