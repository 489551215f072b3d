package format

// Container layout, in order:
//
//	magic (4) | version (1) | algorithm (1) | salt (32) | nonce (12) |
//	metadata length (4, LE) | metadata (variable) | ciphertext+tag
const (
	// Version is the current container format revision. Decryption fails
	// closed on any other value.
	Version byte = 1

	// AlgorithmAES256GCM identifies AES-256-GCM as the AEAD cipher.
	AlgorithmAES256GCM byte = 1

	// SaltLength is the Argon2 salt length in bytes.
	SaltLength = 32

	// NonceLength is the AES-GCM nonce length in bytes.
	NonceLength = 12

	// KeyLength is the AES-256 key length in bytes.
	KeyLength = 32

	// TagLength is the GCM authentication tag length in bytes.
	TagLength = 16

	// HeaderSize is the fixed portion of the container, without the
	// variable-length metadata block.
	HeaderSize = 4 + 1 + 1 + SaltLength + NonceLength + 4
)

// MagicBytes identify a CryptoCrate container. Constant across versions.
var MagicBytes = [4]byte{'C', 'R', 'A', 'T'}

// Header is the fixed-size portion of a container.
type Header struct {
	Version        byte
	Algorithm      byte
	Salt           [SaltLength]byte
	Nonce          [NonceLength]byte
	MetadataLength uint32
}

// NewHeader builds a header for the current format version. Callers cannot
// construct a header with an unsupported version or algorithm.
func NewHeader(salt [SaltLength]byte, nonce [NonceLength]byte, metadataLength uint32) Header {
	return Header{
		Version:        Version,
		Algorithm:      AlgorithmAES256GCM,
		Salt:           salt,
		Nonce:          nonce,
		MetadataLength: metadataLength,
	}
}
