// Package audit keeps a versioned change log of business entities and turns
// consecutive versions into field level diffs labelled in French for the
// admin audit screens.
//
// Only the fields that changed are stored with each version; the full state
// of an object at any version is rebuilt by replaying its entries in order.
package audit
