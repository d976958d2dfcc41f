package domain

import "math/rand/v2"

// DefaultBoardColor is used when a board has no color assigned
const DefaultBoardColor = "bg-purple-500"

// BoardColors is the fixed palette boards pick their color from
var BoardColors = []string{
	"bg-purple-500",
	"bg-blue-500",
	"bg-indigo-500",
	"bg-pink-500",
	"bg-teal-500",
	"bg-green-500",
	"bg-amber-500",
	"bg-red-500",
}

// RandomBoardColor picks a color from the palette
func RandomBoardColor() string {
	return BoardColors[rand.IntN(len(BoardColors))]
}

// IsBoardColor reports whether color belongs to the palette
func IsBoardColor(color string) bool {
	for _, c := range BoardColors {
		if c == color {
			return true
		}
	}
	return false
}
