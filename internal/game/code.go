package game

import (
	crand "crypto/rand"
	"math/big"
	"math/rand"
)

// GenerateRoomCode creates a random room code
func GenerateRoomCode() string {
	code := make([]byte, RoomCodeLength)
	for i := 0; i < RoomCodeLength; i++ {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(RoomCodeChars))))
		if err != nil {
			// fallback to math/rand if crypto fails
			code[i] = RoomCodeChars[rand.Intn(len(RoomCodeChars))]
			continue
		}
		code[i] = RoomCodeChars[n.Int64()]
	}
	return string(code)
}

// GetUniqueRoomCode generates a room code the given predicate does not
// already know about.
func GetUniqueRoomCode(taken func(code string) bool) string {
	for {
		code := GenerateRoomCode()
		if !taken(code) {
			return code
		}
	}
}
