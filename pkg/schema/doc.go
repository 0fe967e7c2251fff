// Package schema builds property descriptors at run time from declared
// fields, such as the properties section of a config file.
//
// A kind expression is a registered scalar name or a composite over other
// expressions:
//
//	text | int | float | bool | enum | <registered>
//	list<E> | set<E> | map<K,V>
//
// Set elements and map keys must be scalar.
package schema
