package agent

import "github.com/scouterlab/talentscout/types"

type Trimmer interface {
	Trim(transcript []types.Turn) []types.Turn
}

// KeepLastNTrimmer keeps the last N turns. When N <= 0 the transcript is
// cleared.
type KeepLastNTrimmer struct {
	N int
}

func (t KeepLastNTrimmer) Trim(transcript []types.Turn) []types.Turn {
	if t.N <= 0 {
		return nil
	}
	if len(transcript) <= t.N {
		return transcript
	}
	return transcript[len(transcript)-t.N:]
}

// appendTurns appends turns, skipping empty content and suppressing a turn
// identical to the previous one.
func appendTurns(transcript []types.Turn, turns ...types.Turn) []types.Turn {
	out := transcript
	for _, turn := range turns {
		if turn.Content == "" {
			continue
		}
		if len(out) > 0 {
			last := out[len(out)-1]
			if last.Role == turn.Role && last.Content == turn.Content {
				continue
			}
		}
		out = append(out, turn)
	}
	return out
}
