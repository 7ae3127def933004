package hash

import (
	"strconv"

	"github.com/ethereum/go-ethereum/crypto"
)

// PersonalMessagePrefix is the EIP-191 version 0x45 prefix used by personal_sign.
const PersonalMessagePrefix = "\x19Ethereum Signed Message:\n"

// Keccak256 calculates the legacy Keccak-256 hash of the concatenated input.
// This is the pre-standard variant used by Ethereum, not NIST SHA3-256.
func Keccak256(data ...[]byte) [32]byte {
	return crypto.Keccak256Hash(data...)
}

// PersonalMessage builds the personal_sign pre-image for msg.
// The length field is the byte length of msg, not its rune count.
func PersonalMessage(msg []byte) []byte {
	length := strconv.Itoa(len(msg))

	preimage := make([]byte, 0, len(PersonalMessagePrefix)+len(length)+len(msg))
	preimage = append(preimage, PersonalMessagePrefix...)
	preimage = append(preimage, length...)
	preimage = append(preimage, msg...)

	return preimage
}

// PersonalMessageDigest returns the Keccak-256 digest of the personal_sign pre-image for msg.
func PersonalMessageDigest(msg []byte) [32]byte {
	return Keccak256(PersonalMessage(msg))
}
