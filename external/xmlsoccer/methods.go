package xmlsoccer

import (
	"sort"
	"strings"
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
)

// ParamType is the declared wire type of a method parameter.
type ParamType int

const (
	ParamInt ParamType = iota + 1
	ParamBool
	ParamFloat
	ParamString
	ParamArray
	ParamMixed
)

func (t ParamType) String() string {
	switch t {
	case ParamInt:
		return "int"
	case ParamBool:
		return "bool"
	case ParamFloat:
		return "float"
	case ParamString:
		return "string"
	case ParamArray:
		return "array"
	case ParamMixed:
		return "mixed"
	default:
		return "invalid"
	}
}

type Param struct {
	Name string
	Type ParamType
}

// MethodSignature declares the ordered parameters of a remote method.
type MethodSignature struct {
	Name   string
	Params []Param
}

const (
	ttlLiveScore = 25 * time.Second
	ttlLongLived = time.Hour
	ttlDefault   = 5 * time.Minute
)

var cacheTTLByMethod = map[string]time.Duration{
	"getlivescore":                        ttlLiveScore,
	"getlivescorebyleague":                ttlLiveScore,
	"getoddsbyfixturematchid":             ttlLongLived,
	"gethistoricmatchesbyleagueandseason": ttlLongLived,
	"getallteams":                         ttlLongLived,
	"getallteamsbyleagueandseason":        ttlLongLived,
}

func newParam(name string, typ ParamType) Param {
	return Param{Name: name, Type: typ}
}

var methodTable = []MethodSignature{
	{Name: "CheckApiKey"},
	{Name: "ImAlive"},
	{Name: "IsMyApiKeyPutOnSpammersList"},
	{Name: "GetAllLeagues"},
	{Name: "GetAllTeams"},
	{Name: "GetAllTeamsByLeagueAndSeason", Params: []Param{newParam("league", ParamMixed), newParam("seasonDateString", ParamString)}},
	{Name: "GetAllGroupsByLeagueAndSeason", Params: []Param{newParam("league", ParamMixed), newParam("seasonDateString", ParamString)}},
	{Name: "GetFixturesByDateInterval", Params: []Param{newParam("startDateString", ParamString), newParam("endDateString", ParamString)}},
	{Name: "GetFixturesByDateIntervalAndLeague", Params: []Param{newParam("league", ParamMixed), newParam("startDateString", ParamString), newParam("endDateString", ParamString)}},
	{Name: "GetFixturesByDateIntervalAndTeam", Params: []Param{newParam("startDateString", ParamString), newParam("endDateString", ParamString), newParam("teamId", ParamMixed)}},
	{Name: "GetFixturesByLeagueAndSeason", Params: []Param{newParam("league", ParamMixed), newParam("seasonDateString", ParamString)}},
	{Name: "GetFixtureMatchByID", Params: []Param{newParam("Id", ParamInt)}},
	{Name: "GetHistoricMatchesByFixtureMatchID", Params: []Param{newParam("Id", ParamInt)}},
	{Name: "GetHistoricMatchesByID", Params: []Param{newParam("Id", ParamInt)}},
	{Name: "GetHistoricMatchesByLeagueAndDateInterval", Params: []Param{newParam("startDateString", ParamString), newParam("endDateString", ParamString), newParam("league", ParamMixed)}},
	{Name: "GetHistoricMatchesByLeagueAndSeason", Params: []Param{newParam("league", ParamMixed), newParam("seasonDateString", ParamString)}},
	{Name: "GetHistoricMatchesByTeamAndDateInterval", Params: []Param{newParam("startDateString", ParamString), newParam("endDateString", ParamString), newParam("teamId", ParamMixed)}},
	{Name: "GetHistoricMatchesByTeamsAndDateInterval", Params: []Param{newParam("team1Id", ParamInt), newParam("team2Id", ParamInt), newParam("startDateString", ParamString), newParam("endDateString", ParamString)}},
	{Name: "GetLeagueStandingsBySeason", Params: []Param{newParam("league", ParamMixed), newParam("seasonDateString", ParamString)}},
	{Name: "GetLiveScore"},
	{Name: "GetLiveScoreByLeague", Params: []Param{newParam("league", ParamMixed)}},
	{Name: "GetOddsByFixtureMatchID", Params: []Param{newParam("fixtureMatch_Id", ParamInt)}},
	{Name: "GetNextMatchOddsByLeague", Params: []Param{newParam("league", ParamMixed)}},
	{Name: "GetPlayersByTeam", Params: []Param{newParam("teamId", ParamInt)}},
	{Name: "GetPlayerById", Params: []Param{newParam("playerId", ParamInt)}},
	{Name: "GetTeam", Params: []Param{newParam("teamName", ParamString)}},
	{Name: "GetTopScorersByLeagueAndSeason", Params: []Param{newParam("league", ParamMixed), newParam("seasonDateString", ParamString)}},
	{Name: "GetEarliestMatchDatePerLeague", Params: []Param{newParam("league", ParamMixed)}},
}

var (
	signaturesOnce sync.Once
	signatures     map[string]MethodSignature
	signaturesErr  error
)

func loadSignatures() (map[string]MethodSignature, error) {
	signaturesOnce.Do(func() {
		signatures, signaturesErr = indexSignatures(methodTable)
	})
	return signatures, signaturesErr
}

func indexSignatures(table []MethodSignature) (map[string]MethodSignature, error) {
	out := make(map[string]MethodSignature, len(table))
	for _, sig := range table {
		name := strings.TrimSpace(sig.Name)
		if name == "" {
			return nil, crerr.New("method signature without name")
		}
		key := strings.ToLower(name)
		if _, exists := out[key]; exists {
			return nil, crerr.Newf("duplicate method signature %q", name)
		}

		seen := make(map[string]struct{}, len(sig.Params))
		params := make([]Param, 0, len(sig.Params))
		for _, param := range sig.Params {
			paramName := strings.TrimSpace(param.Name)
			if paramName == "" {
				return nil, crerr.Newf("method %s has a parameter without name", name)
			}
			if param.Type < ParamInt || param.Type > ParamMixed {
				return nil, crerr.Newf("method %s parameter %s has invalid type %d", name, paramName, param.Type)
			}
			lowered := strings.ToLower(paramName)
			if _, dup := seen[lowered]; dup {
				return nil, crerr.Newf("method %s declares parameter %s twice", name, paramName)
			}
			seen[lowered] = struct{}{}
			params = append(params, Param{Name: paramName, Type: param.Type})
		}

		out[key] = MethodSignature{Name: name, Params: params}
	}
	return out, nil
}

// LookupMethod resolves a method name case-insensitively.
func LookupMethod(name string) (MethodSignature, error) {
	index, err := loadSignatures()
	if err != nil {
		return MethodSignature{}, err
	}
	sig, ok := index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return MethodSignature{}, crerr.Wrapf(ErrUnknownMethod, "method %q is not declared", name)
	}
	return sig, nil
}

// Methods lists every declared signature ordered by name.
func Methods() []MethodSignature {
	index, err := loadSignatures()
	if err != nil {
		return nil
	}
	out := make([]MethodSignature, 0, len(index))
	for _, sig := range index {
		out = append(out, sig)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// CacheTTL returns how long a successful response of method stays fresh.
func CacheTTL(method string) time.Duration {
	if ttl, ok := cacheTTLByMethod[strings.ToLower(strings.TrimSpace(method))]; ok {
		return ttl
	}
	return ttlDefault
}

// Argument is one positional value bound to its declared parameter.
type Argument struct {
	Param
	Value   any
	Encoded string
}

// Bind maps positional args onto the declared parameters. Surplus args are
// dropped and unsupplied or nil args are omitted.
func (s MethodSignature) Bind(args []any) []Argument {
	n := min(len(args), len(s.Params))
	out := make([]Argument, 0, n)
	for i := 0; i < n; i++ {
		if args[i] == nil {
			continue
		}
		param := s.Params[i]
		value := coerce(args[i], param.Type)
		out = append(out, Argument{
			Param:   param,
			Value:   value,
			Encoded: encodeValue(value),
		})
	}
	return out
}
