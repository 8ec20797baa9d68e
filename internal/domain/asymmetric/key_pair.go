package asymmetric

import "crypto"

// KeyPair holds a public key and the private key it belongs to.
type KeyPair struct {
	Public  crypto.PublicKey
	Private crypto.PrivateKey
}

// PublicKeyOf returns the public half of kp, or nil when kp is nil.
func PublicKeyOf(kp *KeyPair) crypto.PublicKey {
	if kp == nil {
		return nil
	}
	return kp.Public
}

// PrivateKeyOf returns the private half of kp, or nil when kp is nil.
func PrivateKeyOf(kp *KeyPair) crypto.PrivateKey {
	if kp == nil {
		return nil
	}
	return kp.Private
}
