package domain

import "strings"

// Positions of the participant and score columns in a session log row.
// Participant i's identifier pairs with score i.
const (
	FieldPlayer1 = 12
	FieldPlayer2 = 13
	FieldPlayer3 = 14
	FieldScore1  = 15
	FieldScore2  = 16
	FieldScore3  = 17

	// MinRowFields is the number of fields a row needs for FieldScore3 to exist.
	MinRowFields = FieldScore3 + 1
)

var (
	playerFields = [3]int{FieldPlayer1, FieldPlayer2, FieldPlayer3}
	scoreFields  = [3]int{FieldScore1, FieldScore2, FieldScore3}
)

// PlayerID is the name part of a log identifier such as "alice@s1".
type PlayerID string

// ParsePlayerID truncates an identifier at its first '@'.
// Identifiers without '@' are returned whole.
func ParsePlayerID(identifier string) PlayerID {
	name, _, _ := strings.Cut(identifier, "@")
	return PlayerID(name)
}

// Participant is one player's entry in a session.
type Participant struct {
	Player PlayerID
	Score  string
}

// SessionRow holds the three participants of one logged session,
// in column order.
type SessionRow struct {
	Participants [3]Participant
}

// NewSessionRow builds a SessionRow from the raw fields of a log line.
// line is the 1-based line number used in the error.
func NewSessionRow(line int, fields []string) (SessionRow, error) {
	if len(fields) < MinRowFields {
		return SessionRow{}, &MalformedRowError{Line: line, Fields: len(fields)}
	}

	var row SessionRow
	for i := range row.Participants {
		row.Participants[i] = Participant{
			Player: ParsePlayerID(fields[playerFields[i]]),
			Score:  fields[scoreFields[i]],
		}
	}
	return row, nil
}

// Scores returns the per-player scores of the row in first-seen order.
// A player listed twice keeps its first position and takes its last score.
func (r SessionRow) Scores() []Participant {
	scores := make([]Participant, 0, len(r.Participants))
	for _, p := range r.Participants {
		replaced := false
		for i := range scores {
			if scores[i].Player == p.Player {
				scores[i].Score = p.Score
				replaced = true
				break
			}
		}
		if !replaced {
			scores = append(scores, p)
		}
	}
	return scores
}

// Winner returns the player with the highest score.
// Scores compare as strings, so "9" beats "10". On a tie the player seen
// first wins.
func (r SessionRow) Winner() PlayerID {
	scores := r.Scores()
	best := scores[0]
	for _, p := range scores[1:] {
		if p.Score > best.Score {
			best = p
		}
	}
	return best.Player
}
