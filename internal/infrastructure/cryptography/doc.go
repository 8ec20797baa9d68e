// Package cryptography implements the asymmetric encryption modules on top of the
// standard library: key generation, PKCS#8 / X.509 key files and single block
// encryption. No cryptographic primitive is implemented here.
package cryptography
