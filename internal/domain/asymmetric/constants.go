package asymmetric

// AlgorithmRSA represents the RSA encryption algorithm
const AlgorithmRSA = "RSA"

// Supported key lengths in bits
const (
	KeyLength1024 = 1024
	KeyLength2048 = 2048
	KeyLength3072 = 3072
	KeyLength4096 = 4096
)

// KeyTypePrivate represents a private key
const KeyTypePrivate = "private"

// KeyTypePublic represents a public key
const KeyTypePublic = "public"
