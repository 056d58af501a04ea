package fixtures

import "encoding/hex"

// Vector is a known answer for a hash algorithm.
type Vector struct {
	Input  []byte
	Digest []byte
}

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

var (
	abc = []byte("abc")
	// "System" is the Substrate storage prefix, a well known Twox128 input.
	system = []byte("System")
)

var SHA256 = []Vector{
	{Input: []byte{}, Digest: mustHex("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")},
	{Input: abc, Digest: mustHex("ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad")},
}

var SHA512 = []Vector{
	{Input: []byte{}, Digest: mustHex("cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e")},
	{Input: abc, Digest: mustHex("ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f")},
}

var Blake2b256 = []Vector{
	{Input: []byte{}, Digest: mustHex("0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8")},
}

var Blake2b128 = []Vector{
	{Input: []byte{}, Digest: mustHex("cae66941d9efbd404e4d88758ea67670")},
	{Input: abc, Digest: mustHex("cf4ab791c62b8d2b2109c90275287816")},
}

var Keccak256 = []Vector{
	{Input: []byte{}, Digest: mustHex("c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")},
}

var SHA3_256 = []Vector{
	{Input: []byte{}, Digest: mustHex("a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a")},
	{Input: abc, Digest: mustHex("3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532")},
}

var Blake3 = []Vector{
	{Input: []byte{}, Digest: mustHex("af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262")},
}

var Twox64 = []Vector{
	{Input: []byte{}, Digest: mustHex("99e9d85137db46ef")},
}

var Twox128 = []Vector{
	{Input: []byte{}, Digest: mustHex("99e9d85137db46ef4bbea33613baafd5")},
	{Input: system, Digest: mustHex("26aa394eea5630e07c48ae0c9558cef7")},
}

var Twox256 = []Vector{
	{Input: []byte{}, Digest: mustHex("99e9d85137db46ef4bbea33613baafd56f963c64b1f3685a4eb4abd67ff6203a")},
}

// XXH64 is canonical big endian XXH64, the byte reverse of Twox64.
var XXH64 = []Vector{
	{Input: []byte{}, Digest: mustHex("ef46db3751d8e999")},
}
