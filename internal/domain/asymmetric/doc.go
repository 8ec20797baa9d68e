// Package asymmetric defines the contract every asymmetric encryption module implements,
// the key pair it produces and the algorithm registry used to look modules up by name.
package asymmetric
