package model

// Player identifies the owner of a cell. None marks an empty cell and is
// never a valid mover.
type Player uint8

const (
	None Player = iota
	First
	Second
)

// String returns the display name used in status text
func (p Player) String() string {
	switch p {
	case First:
		return "First"
	case Second:
		return "Second"
	default:
		return "None"
	}
}

// Symbol returns the single character used to draw the player's mark
func (p Player) Symbol() rune {
	switch p {
	case First:
		return 'X'
	case Second:
		return 'O'
	default:
		return '.'
	}
}

// IsMover reports whether p may take a turn
func (p Player) IsMover() bool {
	return p == First || p == Second
}

// Opponent returns the other mover. None has no opponent.
func (p Player) Opponent() Player {
	switch p {
	case First:
		return Second
	case Second:
		return First
	default:
		return None
	}
}

// Movers returns the players that can hold a run, in turn order
func Movers() []Player {
	return []Player{First, Second}
}

// ParsePlayer maps a mark symbol back to a player.
// Empty cells may be written as '.', '-' or '_'. Spaces separate rows in
// board notation and are never a mark.
func ParsePlayer(r rune) (Player, bool) {
	switch r {
	case 'X', 'x':
		return First, true
	case 'O', 'o':
		return Second, true
	case '.', '-', '_':
		return None, true
	default:
		return None, false
	}
}

// ParsePlayerName maps a display name back to a player
func ParsePlayerName(name string) (Player, bool) {
	switch name {
	case "First", "first":
		return First, true
	case "Second", "second":
		return Second, true
	case "None", "none", "":
		return None, true
	default:
		return None, false
	}
}
