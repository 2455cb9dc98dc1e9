package codec

import (
	"hanabi/game"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCardCodes(t *testing.T) {
	t.Run("worked example", func(t *testing.T) {
		code, err := CardCode(game.Card{Value: 3, Color: game.Green})
		require.NoError(t, err)
		require.Equal(t, 23, code, "11 + 2*5 + 2")
	})

	t.Run("decode then encode is the identity", func(t *testing.T) {
		for code := Cards.Lo; code <= Cards.Hi; code++ {
			card, err := DecodeCard(code)
			require.NoError(t, err)
			got, err := CardCode(card)
			require.NoError(t, err)
			require.Equal(t, code, got)
		}
	})

	t.Run("codes outside the card range", func(t *testing.T) {
		for _, code := range []int{10, 36, 0, -1} {
			_, err := DecodeCard(code)
			require.ErrorIs(t, err, ErrUnknownCode)
		}
	})

	t.Run("invalid card is rejected before arithmetic", func(t *testing.T) {
		_, err := CardCode(game.Card{Value: 6, Color: game.Red})
		require.ErrorIs(t, err, game.ErrInvalidCardFormat)
	})
}

func TestRanges(t *testing.T) {
	require.Equal(t, 685, ActionSpan)
	require.Equal(t, Range{11, 35}, Cards)
	require.Equal(t, Range{36, 720}, SelfMoves)
	require.Equal(t, Range{721, 1405}, PartnerMoves)
	require.Equal(t, Range{1406, 1430}, PartnerDraws)

	t.Run("sub-ranges are contiguous", func(t *testing.T) {
		for _, p := range []game.Player{game.Self, game.Partner} {
			require.Equal(t, Base(p), PlayRange(p).Lo)
			require.Equal(t, PlayRange(p).Hi+1, DiscardRange(p).Lo)
			require.Equal(t, DiscardRange(p).Hi+1, HintRange(p).Lo)
			require.Equal(t, HintRange(p).Hi, MoveRange(p).Hi)
			require.Equal(t, 250, PlayRange(p).Width())
			require.Equal(t, 125, DiscardRange(p).Width())
			require.Equal(t, 310, HintRange(p).Width())
		}
		require.Equal(t, SelfMoves.Hi+1, PartnerMoves.Lo)
		require.Equal(t, PartnerMoves.Hi+1, PartnerDraws.Lo)
	})

	t.Run("ranges never overlap", func(t *testing.T) {
		ranges := []Range{SelfDrawRange, Cards, PartnerDraws}
		for _, p := range []game.Player{game.Self, game.Partner} {
			ranges = append(ranges, PlayRange(p), DiscardRange(p), HintRange(p))
		}
		for i := range ranges {
			for j := i + 1; j < len(ranges); j++ {
				require.False(t, ranges[i].Overlaps(ranges[j]), "%v overlaps %v", ranges[i], ranges[j])
			}
		}
	})
}

func TestEncode(t *testing.T) {
	g3 := game.Card{Value: 3, Color: game.Green}

	tests := []struct {
		name   string
		action game.Action
		want   int
	}{
		{"self plays oldest 3g", game.Play{Player: game.Self, Position: game.Oldest, Card: g3}, 48},
		{"self fails middle 1b", game.Play{Player: game.Self, Position: game.Middle, Card: game.Card{Value: 1, Color: game.Blue}, Outcome: game.Fail}, 226},
		{"partner plays oldest 1y", game.Play{Player: game.Partner, Position: game.Oldest, Card: game.Card{Value: 1, Color: game.Yellow}}, 726},
		{"self discards newest 3b", game.Discard{Player: game.Self, Position: game.Newest, Card: game.Card{Value: 3, Color: game.Blue}}, 403},
		{"partner discards oldest 4b", game.Discard{Player: game.Partner, Position: game.Oldest, Card: game.Card{Value: 4, Color: game.Blue}}, 989},
		{"self hints ones on O and M", game.Hint{Player: game.Self, Positions: []game.Position{game.Oldest, game.Middle}, Kind: game.NumberHint, Value: "1"}, 456},
		{"partner hints green on SO", game.Hint{Player: game.Partner, Positions: []game.Position{game.SecondOldest}, Kind: game.ColorHint, Value: "g"}, 1108},
		{"self hints fives everywhere", game.Hint{Player: game.Self, Positions: game.Positions, Kind: game.NumberHint, Value: "5"}, 720},
		{"partner hints fives everywhere", game.Hint{Player: game.Partner, Positions: game.Positions, Kind: game.NumberHint, Value: "5"}, 1405},
		{"partner draws 1g", game.OpponentDraw{Card: game.Card{Value: 1, Color: game.Green}}, 1416},
		{"own draw", game.SelfDraw{}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.action)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	t.Run("invalid actions are rejected", func(t *testing.T) {
		_, err := Encode(game.Play{Player: game.Self, Position: "X", Card: g3})
		require.ErrorIs(t, err, game.ErrInvalidPosition)

		_, err = Encode(game.Hint{Player: game.Self, Kind: game.ColorHint, Value: "g"})
		require.ErrorIs(t, err, game.ErrInvalidPosition)

		_, err = Encode(nil)
		require.ErrorIs(t, err, ErrUnsupportedAction)
	})
}

// allActions enumerates every action with a code in a player's action space.
func allActions(p game.Player) []game.Action {
	var actions []game.Action
	for _, pos := range game.Positions {
		for i := 0; i < CardCount; i++ {
			card := cardAt(i)
			actions = append(actions,
				game.Play{Player: p, Position: pos, Card: card, Outcome: game.Success},
				game.Play{Player: p, Position: pos, Card: card, Outcome: game.Fail},
				game.Discard{Player: p, Position: pos, Card: card},
			)
		}
	}
	for mask := 1; mask < 32; mask++ {
		var positions []game.Position
		for rank, pos := range game.Positions {
			if mask&(1<<rank) != 0 {
				positions = append(positions, pos)
			}
		}
		for _, c := range game.Colors {
			actions = append(actions, game.Hint{Player: p, Positions: positions, Kind: game.ColorHint, Value: c.String()})
		}
		for _, v := range game.Values {
			actions = append(actions, game.Hint{Player: p, Positions: positions, Kind: game.NumberHint, Value: strconv.Itoa(v)})
		}
	}
	return actions
}

func TestEncodeIsBijective(t *testing.T) {
	seen := map[int]game.Action{}
	for _, p := range []game.Player{game.Self, game.Partner} {
		for _, a := range allActions(p) {
			code, err := Encode(a)
			require.NoError(t, err)
			require.True(t, MoveRange(p).Contains(code), "%+v encoded outside its player range: %d", a, code)

			prev, dup := seen[code]
			require.False(t, dup, "%+v and %+v share code %d", prev, a)
			seen[code] = a

			class, player := Classify(code)
			require.Equal(t, p, player)
			require.Equal(t, a.Type().String(), class.String())
		}
	}
	require.Len(t, seen, 2*ActionSpan, "every code of both action spaces is used")
}

func TestDecode(t *testing.T) {
	t.Run("decode then encode is the identity", func(t *testing.T) {
		codes := []int{SelfDrawCode}
		for code := Moves.Lo; code <= PartnerDraws.Hi; code++ {
			codes = append(codes, code)
		}
		for _, code := range codes {
			action, err := Decode(code)
			require.NoError(t, err)
			got, err := Encode(action)
			require.NoError(t, err)
			require.Equal(t, code, got)
		}
	})

	t.Run("hint triple is recovered", func(t *testing.T) {
		action, err := Decode(456)
		require.NoError(t, err)
		require.Equal(t, game.Hint{
			Player:    game.Self,
			Positions: []game.Position{game.Oldest, game.Middle},
			Kind:      game.NumberHint,
			Value:     "1",
		}, action)
	})

	t.Run("codes outside the action ranges", func(t *testing.T) {
		for _, code := range []int{0, 2, 10, 11, 35, 1431} {
			_, err := Decode(code)
			require.ErrorIs(t, err, ErrUnknownCode, "code %d", code)
		}
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		code   int
		class  Class
		player game.Player
	}{
		{1, SelfDrawClass, game.Self},
		{23, CardClass, game.Self},
		{48, PlayClass, game.Self},
		{970, PlayClass, game.Partner},
		{971, DiscardClass, game.Partner},
		{1096, HintClass, game.Partner},
		{1405, HintClass, game.Partner},
		{1430, PartnerDrawClass, game.Partner},
	}
	for _, tt := range tests {
		class, player := Classify(tt.code)
		require.Equal(t, tt.class, class, "code %d", tt.code)
		require.Equal(t, tt.player, player, "code %d", tt.code)
	}

	class, _ := Classify(5)
	require.Equal(t, Unknown, class)
	require.False(t, Known(5))
	require.True(t, Known(1430))
}
