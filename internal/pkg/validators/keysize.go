package validators

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// rsaKeySizes are the RSA modulus lengths accepted for key generation.
// Lengths below 1024 bits are refused by crypto/rsa.
var rsaKeySizes = map[uint64]bool{1024: true, 2048: true, 3072: true, 4096: true}

// KeySizeValidation validates the key size based on the sibling Algorithm field.
func KeySizeValidation(fl validator.FieldLevel) bool {
	algorithmField := fl.Parent().FieldByName("Algorithm")
	if !algorithmField.IsValid() || algorithmField.Kind() != reflect.String {
		return false
	}

	var keySize uint64
	switch field := fl.Field(); field.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if field.Int() < 0 {
			return false
		}
		keySize = uint64(field.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		keySize = field.Uint()
	default:
		return false
	}

	return IsSupportedKeySize(algorithmField.String(), keySize)
}

// IsSupportedKeySize reports whether keySize is accepted for the named algorithm.
func IsSupportedKeySize(algorithm string, keySize uint64) bool {
	switch strings.ToUpper(algorithm) {
	case "RSA":
		return rsaKeySizes[keySize]
	default:
		return false
	}
}
