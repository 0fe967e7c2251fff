// Package types defines the property descriptor and kind interfaces, the
// host contract, the Vault and RecordTable storage interfaces, and the
// standard errors for satchel.
package types
