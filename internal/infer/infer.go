package infer

import (
	"strconv"
	"strings"
	"time"

	"github.com/grnwood/csvkit/internal/types"
)

// Default token sets and temporal layouts. Each is replaced wholesale, not
// merged, when the corresponding Options field is set.
var (
	DefaultNullTokens  = []string{"", "na", "n/a", "none", "null", "."}
	DefaultTrueTokens  = []string{"yes", "y", "true", "t"}
	DefaultFalseTokens = []string{"no", "n", "false", "f"}

	DefaultDateLayouts = []string{
		types.DateLayout,
		"01/02/2006",
		"02/01/2006",
		"2006/01/02",
		"Jan 2, 2006",
	}
	// No zoned layouts here: the canonical datetime form carries no
	// offset, so parsing one would shift the instant on round trip.
	// Zoned columns stay text unless a layout is configured.
	DefaultDateTimeLayouts = []string{
		types.DateTimeLayout,
		"2006-01-02 15:04:05",
		"01/02/2006 15:04",
	}
	DefaultTimeLayouts = []string{
		types.TimeLayout,
		"15:04",
		"3:04 PM",
	}
)

// Options configures the inference cascade. The zero value (and nil) means
// the defaults above. Token matching is case-insensitive.
type Options struct {
	NullTokens  []string
	TrueTokens  []string
	FalseTokens []string

	DateLayouts     []string
	DateTimeLayouts []string
	TimeLayouts     []string
}

// NullToken returns the token that stands in for a missing value: the
// first configured null token. Callers padding short rows use it so the
// padding is null under whatever token set is in effect.
func (o *Options) NullToken() string {
	if o == nil || o.NullTokens == nil {
		return DefaultNullTokens[0]
	}
	if len(o.NullTokens) == 0 {
		return ""
	}
	return o.NullTokens[0]
}

// resolved is an Options with defaults applied and token sets folded to
// lowercase for lookup.
type resolved struct {
	null      map[string]struct{}
	boolTrue  map[string]struct{}
	boolFalse map[string]struct{}

	dateLayouts     []string
	dateTimeLayouts []string
	timeLayouts     []string
}

func tokenSet(tokens, defaults []string) map[string]struct{} {
	if tokens == nil {
		tokens = defaults
	}
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[strings.ToLower(t)] = struct{}{}
	}
	return set
}

func layoutList(layouts, defaults []string) []string {
	if layouts == nil {
		return defaults
	}
	return layouts
}

func (o *Options) resolve() *resolved {
	if o == nil {
		o = &Options{}
	}
	return &resolved{
		null:            tokenSet(o.NullTokens, DefaultNullTokens),
		boolTrue:        tokenSet(o.TrueTokens, DefaultTrueTokens),
		boolFalse:       tokenSet(o.FalseTokens, DefaultFalseTokens),
		dateLayouts:     layoutList(o.DateLayouts, DefaultDateLayouts),
		dateTimeLayouts: layoutList(o.DateTimeLayouts, DefaultDateTimeLayouts),
		timeLayouts:     layoutList(o.TimeLayouts, DefaultTimeLayouts),
	}
}

func (r *resolved) isNull(token string) bool {
	_, ok := r.null[strings.ToLower(token)]
	return ok
}

// Normalize determines the narrowest common type of a sequence of raw string
// tokens and converts the tokens to typed values. Candidate types are tried
// from most to least restrictive (bool, int, float, date, datetime, time,
// text); a candidate wins only if every non-null token parses under it.
// Null-token positions become the null sentinel in the result regardless of
// the winning type, and a sequence with no non-null tokens infers as
// NullType. Text always succeeds, so Normalize is total. Tokens are assumed
// to be already whitespace-trimmed by the caller.
func Normalize(raw []string, opts *Options) (types.ValueType, []types.Value) {
	r := opts.resolve()

	isNull := make([]bool, len(raw))
	allNull := true
	for i, token := range raw {
		if r.isNull(token) {
			isNull[i] = true
		} else {
			allNull = false
		}
	}

	if allNull {
		values := make([]types.Value, len(raw))
		for i := range values {
			values[i] = types.Null
		}
		return types.NullType, values
	}

	if values, ok := r.tryBool(raw, isNull); ok {
		return types.BoolType, values
	}
	if values, ok := tryInt(raw, isNull); ok {
		return types.IntType, values
	}
	if values, ok := tryFloat(raw, isNull); ok {
		return types.FloatType, values
	}
	if values, ok := tryTemporal(raw, isNull, r.dateLayouts, types.NewDate); ok {
		return types.DateType, values
	}
	if values, ok := tryTemporal(raw, isNull, r.dateTimeLayouts, types.NewDateTime); ok {
		return types.DateTimeType, values
	}
	if values, ok := tryTemporal(raw, isNull, r.timeLayouts, types.NewTime); ok {
		return types.TimeType, values
	}

	// Text is the catch-all; it cannot fail.
	values := make([]types.Value, len(raw))
	for i, token := range raw {
		if isNull[i] {
			values[i] = types.Null
		} else {
			values[i] = types.NewText(token)
		}
	}
	return types.TextType, values
}

func (r *resolved) tryBool(raw []string, isNull []bool) ([]types.Value, bool) {
	values := make([]types.Value, len(raw))
	for i, token := range raw {
		if isNull[i] {
			values[i] = types.Null
			continue
		}
		lower := strings.ToLower(token)
		if _, ok := r.boolTrue[lower]; ok {
			values[i] = types.NewBool(true)
		} else if _, ok := r.boolFalse[lower]; ok {
			values[i] = types.NewBool(false)
		} else {
			return nil, false
		}
	}
	return values, true
}

// stripGroupSeparators removes comma thousands separators so tokens like
// "1,000" parse as numbers.
func stripGroupSeparators(token string) string {
	return strings.ReplaceAll(token, ",", "")
}

func tryInt(raw []string, isNull []bool) ([]types.Value, bool) {
	values := make([]types.Value, len(raw))
	for i, token := range raw {
		if isNull[i] {
			values[i] = types.Null
			continue
		}
		// ParseInt rejects decimal points and exponents, so exact
		// integers never leak into the float candidate.
		n, err := strconv.ParseInt(stripGroupSeparators(token), 10, 64)
		if err != nil {
			return nil, false
		}
		values[i] = types.NewInt(n)
	}
	return values, true
}

func tryFloat(raw []string, isNull []bool) ([]types.Value, bool) {
	values := make([]types.Value, len(raw))
	for i, token := range raw {
		if isNull[i] {
			values[i] = types.Null
			continue
		}
		f, err := strconv.ParseFloat(stripGroupSeparators(token), 64)
		if err != nil {
			return nil, false
		}
		values[i] = types.NewFloat(f)
	}
	return values, true
}

// tryTemporal tries each layout in order; a layout wins only if it parses
// every non-null token, so a whole column shares one format.
func tryTemporal(raw []string, isNull []bool, layouts []string, wrap func(time.Time) types.Value) ([]types.Value, bool) {
	for _, layout := range layouts {
		values := make([]types.Value, len(raw))
		ok := true
		for i, token := range raw {
			if isNull[i] {
				values[i] = types.Null
				continue
			}
			t, err := time.Parse(layout, token)
			if err != nil {
				ok = false
				break
			}
			values[i] = wrap(t)
		}
		if ok {
			return values, true
		}
	}
	return nil, false
}
