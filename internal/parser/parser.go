package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/idilsaglam/situs/internal/command"
	"github.com/idilsaglam/situs/internal/model"
)

const (
	cmdList     = "list"
	cmdAdd      = "add"
	cmdSubtract = "subtract"
	cmdDelete   = "delete"
	cmdUpdate   = "update"
	cmdDate     = "date"
	cmdExpire   = "expire"
	cmdFind     = "find"
	cmdAlerts   = "alerts"
	cmdSet      = "set"
	cmdHelp     = "help"
	cmdExit     = "exit"
)

const (
	markerName   = "n/"
	markerAmount = "a/"
	markerExpiry = "e/"
)

// A grammar lists the markers a command needs, in the order they must appear.
type grammar struct {
	re      *regexp.Regexp
	markers []string
}

func newGrammar(markers ...string) grammar {
	quoted := make([]string, len(markers))
	for i, m := range markers {
		quoted[i] = regexp.QuoteMeta(m)
	}
	return grammar{
		re:      regexp.MustCompile(strings.Join(quoted, "|")),
		markers: markers,
	}
}

var (
	ingredientGrammar = newGrammar(markerName, markerAmount, markerExpiry)
	subtractGrammar   = newGrammar(markerName, markerAmount)
	deleteGrammar     = newGrammar(markerName, markerExpiry)
)

// fields splits line at every marker and returns the trimmed values, one
// per marker. Index 0 of the raw split is the text before the first marker
// and is discarded. Trailing empty fields are dropped before counting, so a
// marker with nothing after it is reported the same way as a missing one.
// A value holding the record separator could not be stored, so it is
// refused here.
func (g grammar) fields(line string) ([]string, error) {
	found := g.re.FindAllString(line, -1)
	if len(found) != len(g.markers) {
		return nil, command.ErrParamCount
	}
	for i, m := range found {
		if m != g.markers[i] {
			return nil, command.ErrParamCount
		}
	}

	parts := g.re.Split(line, -1)
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) != len(g.markers)+1 {
		return nil, command.ErrParamCount
	}

	values := make([]string, 0, len(g.markers))
	for _, p := range parts[1:] {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, command.ErrParamCount
		}
		if strings.Contains(p, model.Separator) {
			return nil, command.ErrSeparator
		}
		values = append(values, p)
	}
	return values, nil
}

// IsExit reports whether line is the exit command.
func IsExit(line string) bool {
	word, _ := split(line)
	return word == cmdExit
}

// Parse turns one input line into a command. An unknown command word gives
// command.Invalid and no error; every other failure is one of the command
// package's sentinel errors and yields no command.
func Parse(line string) (command.Command, error) {
	line = strings.TrimSpace(line)
	word, rest := split(line)

	switch word {
	case cmdList:
		return command.List{}, nil
	case cmdHelp:
		return command.Help{}, nil
	case cmdExit:
		return command.Exit{}, nil
	case cmdAdd:
		ing, err := parseIngredient(line)
		if err != nil {
			return nil, err
		}
		return command.Add{Ingredient: ing}, nil
	case cmdUpdate:
		ing, err := parseIngredient(line)
		if err != nil {
			return nil, err
		}
		return command.Update{Ingredient: ing}, nil
	case cmdSubtract:
		return parseSubtract(line)
	case cmdDelete:
		return parseDelete(line)
	case cmdDate:
		return command.Date{Value: rest}, nil
	case cmdExpire:
		d, err := model.ParseDate(rest)
		if err != nil {
			return nil, command.ErrDateFormat
		}
		return command.Expire{Before: d}, nil
	case cmdFind:
		return parseFind(rest)
	case cmdAlerts:
		return parseAlerts(rest)
	case cmdSet:
		return parseSet(line)
	}
	return command.Invalid{}, nil
}

// split separates the command word from the trimmed remainder. The command
// word is matched case-insensitively.
func split(line string) (word, rest string) {
	line = strings.TrimSpace(line)
	i := strings.IndexAny(line, " \t")
	if i < 0 {
		return strings.ToLower(line), ""
	}
	return strings.ToLower(line[:i]), strings.TrimSpace(line[i+1:])
}

func parseIngredient(line string) (model.Ingredient, error) {
	v, err := ingredientGrammar.fields(line)
	if err != nil {
		return model.Ingredient{}, err
	}
	amount, err := model.ParseAmount(v[1])
	if err != nil {
		return model.Ingredient{}, command.ErrNumberFormat
	}
	expiry, err := model.ParseDate(v[2])
	if err != nil {
		return model.Ingredient{}, command.ErrDateFormat
	}
	return model.NewIngredient(v[0], amount, model.DefaultUnits, expiry), nil
}

func parseSubtract(line string) (command.Command, error) {
	v, err := subtractGrammar.fields(line)
	if err != nil {
		return nil, err
	}
	amount, err := model.ParseAmount(v[1])
	if err != nil {
		return nil, command.ErrNumberFormat
	}
	return command.Subtract{Name: v[0], Amount: amount}, nil
}

func parseDelete(line string) (command.Command, error) {
	v, err := deleteGrammar.fields(line)
	if err != nil {
		return nil, err
	}
	return command.Delete{Name: v[0], Expiry: v[1]}, nil
}

func parseFind(rest string) (command.Command, error) {
	keywords := strings.Split(rest, " ")
	for i, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			return nil, command.ErrParamCount
		}
		keywords[i] = kw
	}
	return command.Find{Keywords: keywords}, nil
}

func parseAlerts(rest string) (command.Command, error) {
	switch kind := command.AlertKind(rest); kind {
	case command.AlertAll, command.AlertExpiry, command.AlertStock:
		return command.Alerts{Kind: kind}, nil
	}
	return nil, command.ErrAlertType
}

// parseSet reads "set <kind> <value>". The line is cut into at most three
// space-separated pieces so anything after the kind is the value.
func parseSet(line string) (command.Command, error) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) < 3 {
		return nil, command.ErrParamCount
	}
	kind, raw := strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2])

	switch command.ThresholdKind(kind) {
	case command.ThresholdExpiry:
		days, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || days < 0 || days > command.MaxExpiryThresholdDays {
			return nil, command.ErrNumberFormat
		}
		return command.SetThreshold{Kind: command.ThresholdExpiry, Days: days, Raw: raw}, nil
	case command.ThresholdStock:
		kg, err := model.ParseAmount(raw)
		if err != nil {
			return nil, command.ErrNumberFormat
		}
		return command.SetThreshold{Kind: command.ThresholdStock, Kg: kg, Raw: raw}, nil
	}
	return nil, command.ErrInvalidInput
}
