package params

const (
	SecParam = 256
	SecBytes = SecParam / 8

	// L, LPrime and Epsilon are the range parameters of the ZK proofs:
	// plaintexts proven in range live in ±2ᴸ (±2ᴸ' for MtA shares), and the
	// slack added by the sigma protocol is 2ᵉ.
	L                 = 1 * SecParam     // = 256
	LPrime            = 5 * SecParam     // = 1280
	Epsilon           = 2 * SecParam     // = 512
	LPlusEpsilon      = L + Epsilon      // = 768
	LPrimePlusEpsilon = LPrime + Epsilon // = 1792

	BitsIntModN  = 8 * SecParam    // = 2048
	BytesIntModN = BitsIntModN / 8 // = 256

	BitsBlumPrime = 4 * SecParam      // = 1024
	BitsPaillier  = 2 * BitsBlumPrime // = 2048

	BytesPaillier   = BitsPaillier / 8  // = 256
	BytesCiphertext = 2 * BytesPaillier // = 512

	BytesScalar = 32
	BytesPoint  = 33

	// BytesSSID is the width of a session identifier: a SHA-256 digest of
	// 32 random bytes, truncated.
	BytesSSID = 16
)
