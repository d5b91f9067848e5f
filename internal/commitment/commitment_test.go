package commitment

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ninja-strike/internal/entity"
)

func testGames(n int) []entity.Game {
	games := make([]entity.Game, 0, n)
	for i := range n {
		games = append(games, entity.NewGame(string(rune('a'+i)), "0xA", uint64(1000+i)))
	}

	return games
}

func mustHash(t *testing.T, game entity.Game) common.Hash {
	t.Helper()

	hash, err := HashGame(game)
	require.NoError(t, err)

	return hash
}

func TestCanonical(t *testing.T) {
	t.Run("Keeps declared field order", func(t *testing.T) {
		// Given: a lobby game
		game := entity.NewGame("0x1", "0xA", 1000)

		// When: serializing
		data, err := Canonical(game)

		// Then: the output matches JSON.stringify byte for byte
		require.NoError(t, err)
		assert.Equal(t,
			`{"gameId":"0x1","player1":"0xA","player2":"","createdAt":1000,"startedAt":0,"endedAt":0,`+
				`"status":"in_lobby","lastMove":"","lastPlayer":"","hitCountP1":0,"hitCountP2":0,"winner":""}`,
			string(data))
	})

	t.Run("Does not escape HTML characters", func(t *testing.T) {
		data, err := Canonical(entity.Game{LastMove: "<a&b>"})

		require.NoError(t, err)
		assert.Contains(t, string(data), `"lastMove":"<a&b>"`)
	})
}

func TestMerkleRoot(t *testing.T) {
	t.Run("Empty collection", func(t *testing.T) {
		root, err := MerkleRoot(nil)

		require.NoError(t, err)
		assert.Equal(t, "0xc5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470", root.Hex())
		assert.Equal(t, EmptyRoot, root)
	})

	t.Run("Single game is its own leaf", func(t *testing.T) {
		games := testGames(1)

		root, err := MerkleRoot(games)

		require.NoError(t, err)
		assert.Equal(t, mustHash(t, games[0]), root)
	})

	t.Run("Two games hash the concatenated leaves", func(t *testing.T) {
		// Given: [g1, g2]
		games := testGames(2)
		h1, h2 := mustHash(t, games[0]), mustHash(t, games[1])

		// When: computing the root
		root, err := MerkleRoot(games)

		// Then: root = keccak256(hash(g1) || hash(g2))
		require.NoError(t, err)
		assert.Equal(t, crypto.Keccak256Hash(append(h1.Bytes(), h2.Bytes()...)), root)
	})

	t.Run("Odd node is carried up", func(t *testing.T) {
		games := testGames(3)
		h1, h2, h3 := mustHash(t, games[0]), mustHash(t, games[1]), mustHash(t, games[2])

		root, err := MerkleRoot(games)

		require.NoError(t, err)
		assert.Equal(t, crypto.Keccak256Hash(crypto.Keccak256(h1.Bytes(), h2.Bytes()), h3.Bytes()), root)
	})

	t.Run("Order matters", func(t *testing.T) {
		games := testGames(2)

		forward, err := MerkleRoot(games)
		require.NoError(t, err)
		backward, err := MerkleRoot([]entity.Game{games[1], games[0]})
		require.NoError(t, err)

		assert.NotEqual(t, forward, backward)
	})

	t.Run("Any field change changes the root", func(t *testing.T) {
		games := testGames(3)
		before, err := MerkleRoot(games)
		require.NoError(t, err)

		games[2].LastMove = "1,1"
		after, err := MerkleRoot(games)
		require.NoError(t, err)

		assert.NotEqual(t, before, after)
	})
}

func TestFlatRoot(t *testing.T) {
	t.Run("Empty collection hashes an empty array", func(t *testing.T) {
		root, err := FlatRoot(nil)

		require.NoError(t, err)
		assert.Equal(t, crypto.Keccak256Hash([]byte("[]")), root)
	})

	t.Run("Hashes the serialized collection", func(t *testing.T) {
		games := testGames(2)
		data, err := Canonical(games)
		require.NoError(t, err)

		root, err := FlatRoot(games)

		require.NoError(t, err)
		assert.Equal(t, crypto.Keccak256Hash(data), root)
		assert.Equal(t, byte('['), data[0])
	})
}

func TestRoot_Scheme(t *testing.T) {
	games := testGames(2)

	flat, err := Root(SchemeFlat, games)
	require.NoError(t, err)
	merkle, err := Root(SchemeMerkle, games)
	require.NoError(t, err)

	assert.NotEqual(t, flat, merkle)

	_, err = Root("sparse", games)
	require.ErrorIs(t, err, ErrUnknownScheme)

	scheme, err := ParseScheme("")
	require.NoError(t, err)
	assert.Equal(t, SchemeMerkle, scheme)
}

func TestProof(t *testing.T) {
	for n := 1; n <= 7; n++ {
		games := testGames(n)
		root, err := MerkleRoot(games)
		require.NoError(t, err)

		for i := range games {
			// When: proving membership of game i
			proof, err := Proof(games, i)
			require.NoError(t, err)

			// Then: the proof verifies against the root and fails for another leaf
			leaf := mustHash(t, games[i])
			assert.True(t, VerifyProof(root, leaf, proof), "n=%d i=%d", n, i)
			assert.False(t, VerifyProof(root, common.Hash{0x01}, proof), "n=%d i=%d", n, i)
		}
	}

	_, err := Proof(testGames(2), 2)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}
