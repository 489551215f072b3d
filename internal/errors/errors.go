package errors

import "errors"

// Format errors indicate the input is not a valid container.
var (
	// ErrInvalidFormat indicates the file is not a valid CryptoCrate container.
	ErrInvalidFormat = errors.New("invalid file format")

	// ErrUnsupportedVersion indicates the container was written by a newer
	// (or otherwise unknown) format revision.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrUnsupportedAlgorithm indicates the algorithm id is not recognized.
	ErrUnsupportedAlgorithm = errors.New("unsupported encryption algorithm")
)

// Cryptographic errors indicate failures during encryption or decryption.
var (
	// ErrInvalidPassword indicates AEAD tag verification failed. A wrong key
	// and corrupted ciphertext are deliberately indistinguishable.
	ErrInvalidPassword = errors.New("invalid password")

	// ErrEncryptFailed indicates cipher construction or sealing failed.
	ErrEncryptFailed = errors.New("failed to encrypt data")

	// ErrDecryptFailed indicates cipher construction failed during decryption.
	ErrDecryptFailed = errors.New("failed to decrypt data")

	// ErrKeyDerivation indicates key derivation failed, usually because of
	// invalid cost parameters.
	ErrKeyDerivation = errors.New("key derivation failed")
)

// File errors indicate issues locating or validating input files.
var (
	// ErrFileNotFound indicates a source path does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrNoFilesFound indicates no files matched the provided paths.
	ErrNoFilesFound = errors.New("no matching files found")

	// ErrKeyfileTooLarge indicates a keyfile exceeds the 10 MiB cap.
	ErrKeyfileTooLarge = errors.New("keyfile too large")

	// ErrKeyfileEmpty indicates a keyfile contains no data.
	ErrKeyfileEmpty = errors.New("keyfile is empty")
)
