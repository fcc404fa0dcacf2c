package domain

// WinCount is a player's number of won sessions.
type WinCount struct {
	Player PlayerID
	Wins   int64
}

// Tally accumulates session results over one pass of a log.
type Tally struct {
	Sessions int64

	wins  map[PlayerID]int64
	order []PlayerID
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{wins: make(map[PlayerID]int64)}
}

// Record counts one session and credits its winner.
func (t *Tally) Record(row SessionRow) PlayerID {
	winner := row.Winner()
	if _, ok := t.wins[winner]; !ok {
		t.order = append(t.order, winner)
	}
	t.wins[winner]++
	t.Sessions++
	return winner
}

// Wins returns the win count of a single player.
func (t *Tally) Wins(player PlayerID) int64 {
	return t.wins[player]
}

// Winners lists every player with at least one win, in the order each
// first won.
func (t *Tally) Winners() []WinCount {
	out := make([]WinCount, 0, len(t.order))
	for _, p := range t.order {
		out = append(out, WinCount{Player: p, Wins: t.wins[p]})
	}
	return out
}

// TotalWins sums all win counts. It always equals Sessions.
func (t *Tally) TotalWins() int64 {
	var total int64
	for _, n := range t.wins {
		total += n
	}
	return total
}
