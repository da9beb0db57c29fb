package goal

import (
	"iter"
	"strconv"
	"strings"

	"github.com/riskibarqy/xmlsoccer-import/internal/domain/player"
)

const (
	segmentSeparator = ";"
	minuteSeparator  = ":"
	penaltyPrefix    = "penalty "
	ownGoalPrefix    = "Own "
)

// Side is the team a goal log belongs to.
type Side int

const (
	SideHome Side = iota + 1
	SideAway
)

func (s Side) Opposite() Side {
	switch s {
	case SideHome:
		return SideAway
	case SideAway:
		return SideHome
	default:
		return s
	}
}

func (s Side) String() string {
	switch s {
	case SideHome:
		return "home"
	case SideAway:
		return "away"
	default:
		return "unknown"
	}
}

// Roster resolves player names of one team to stored player ids.
type Roster map[string]int64

func NewRoster(players []player.Player) Roster {
	out := make(Roster, len(players))
	for _, p := range players {
		if p.Name == "" {
			continue
		}
		out[p.Name] = p.ID
	}
	return out
}

// Lookup returns nil when name is not on the roster.
func (r Roster) Lookup(name string) *int64 {
	id, ok := r[name]
	if !ok {
		return nil
	}
	return &id
}

// Rosters holds both teams of a match.
type Rosters struct {
	Home Roster
	Away Roster
}

func (r Rosters) For(side Side) Roster {
	if side == SideAway {
		return r.Away
	}
	return r.Home
}

// Event is one decoded goal log entry.
type Event struct {
	Minute     int
	ScorerName string
	OwnGoal    bool
	Penalty    bool
	// Side is the team credited with the goal, always the side of the log.
	Side Side
	// ScorerSide is the team of the scorer. It is the opposite side for an own goal.
	ScorerSide Side
	PlayerID   *int64
	Raw        string
}

// Blank reports an entry with neither minute nor scorer, as produced by an
// empty log or a trailing separator.
func (e Event) Blank() bool {
	return e.Minute == 0 && e.ScorerName == ""
}

// Scanner decodes a goal log such as "12': penalty Jones;78': Own Brown" one
// segment at a time. It cannot be rewound.
type Scanner struct {
	rest    string
	done    bool
	side    Side
	rosters Rosters
	event   Event
}

func NewScanner(log string, side Side, rosters Rosters) *Scanner {
	return &Scanner{rest: log, side: side, rosters: rosters}
}

// Scan advances to the next segment. Every log has at least one segment, so
// an empty log yields a single blank event.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	segment, rest, found := strings.Cut(s.rest, segmentSeparator)
	if found {
		s.rest = rest
	} else {
		s.rest = ""
		s.done = true
	}
	s.event = s.decode(segment)
	return true
}

func (s *Scanner) Event() Event {
	return s.event
}

// All yields the remaining events.
func (s *Scanner) All() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for s.Scan() {
			if !yield(s.event) {
				return
			}
		}
	}
}

// ParseGoalLog decodes log for side lazily.
func ParseGoalLog(log string, side Side, rosters Rosters) iter.Seq[Event] {
	return NewScanner(log, side, rosters).All()
}

// decode never fails: a segment without separator keeps what it can.
func (s *Scanner) decode(segment string) Event {
	minutePart, descriptor, _ := strings.Cut(segment, minuteSeparator)
	minutePart = strings.TrimRight(strings.TrimSpace(minutePart), "'")
	descriptor = strings.TrimSpace(descriptor)

	ev := Event{
		Minute:     leadingMinute(minutePart),
		Side:       s.side,
		ScorerSide: s.side,
		Raw:        segment,
	}

	// Only one prefix is stripped and penalty wins.
	if rest, ok := strings.CutPrefix(descriptor, penaltyPrefix); ok {
		ev.Penalty = true
		descriptor = strings.TrimLeft(rest, " ")
	} else if rest, ok := strings.CutPrefix(descriptor, ownGoalPrefix); ok {
		ev.OwnGoal = true
		ev.ScorerSide = s.side.Opposite()
		descriptor = strings.TrimLeft(rest, " ")
	}

	ev.ScorerName = descriptor
	if ev.ScorerName != "" {
		ev.PlayerID = s.rosters.For(ev.ScorerSide).Lookup(ev.ScorerName)
	}
	return ev
}

// leadingMinute reads the digits at the start of raw, e.g. "90+3" is 90.
func leadingMinute(raw string) int {
	end := 0
	for end < len(raw) && raw[end] >= '0' && raw[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}
	minute, err := strconv.Atoi(raw[:end])
	if err != nil {
		return 0
	}
	return minute
}
