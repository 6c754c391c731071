package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

// UnitChoice is one of the standard measurement units an ingredient or a
// recipe requirement can be expressed in.
type UnitChoice string

const (
	UnitGrams      UnitChoice = "grams"
	UnitPounds     UnitChoice = "pounds"
	UnitCup        UnitChoice = "cup"
	UnitKilogram   UnitChoice = "kilogram"
	UnitTablespoon UnitChoice = "tablespoon"
	UnitTeaspoon   UnitChoice = "teaspoon"
	UnitMillimeter UnitChoice = "millimeter"
	UnitOunces     UnitChoice = "ounces"
	UnitOther      UnitChoice = "other"
)

// UnitChoices lists the allowed unit values in display order.
var UnitChoices = []UnitChoice{
	UnitGrams,
	UnitPounds,
	UnitCup,
	UnitKilogram,
	UnitTablespoon,
	UnitTeaspoon,
	UnitMillimeter,
	UnitOunces,
	UnitOther,
}

var unitLabels = map[UnitChoice]string{
	UnitGrams:      "g",
	UnitPounds:     "lbs",
	UnitCup:        "c",
	UnitKilogram:   "kg",
	UnitTablespoon: "tbsp",
	UnitTeaspoon:   "tsp",
	UnitMillimeter: "ml",
	UnitOunces:     "oz",
	UnitOther:      "-",
}

const (
	UnitMaxLength       = 10
	CustomUnitMaxLength = 50
)

// ErrInvalidUnit is returned when a unit cannot be built from its parts.
var ErrInvalidUnit = errors.New("invalid unit")

// Valid reports whether u is one of UnitChoices.
func (u UnitChoice) Valid() bool {
	_, ok := unitLabels[u]
	return ok
}

// Label returns the short label shown next to quantities, e.g. "tbsp".
func (u UnitChoice) Label() string {
	return unitLabels[u]
}

// Value stores an empty choice as NULL.
func (u UnitChoice) Value() (driver.Value, error) {
	if u == "" {
		return nil, nil
	}
	return string(u), nil
}

// Scan implements the sql.Scanner interface
func (u *UnitChoice) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*u = ""
	case string:
		*u = UnitChoice(v)
	case []byte:
		*u = UnitChoice(v)
	default:
		return fmt.Errorf("cannot scan %T into UnitChoice", value)
	}
	return nil
}

// UnitKind tells which variant a Unit holds.
type UnitKind int

const (
	UnitKindNone UnitKind = iota
	UnitKindStandard
	UnitKindCustom
)

// Unit is either nothing, a standard UnitChoice, or a free-text unit such as
// "slice" or "batch". The zero value is the empty unit. Build one with
// ParseUnit, StandardUnit or CustomUnit.
type Unit struct {
	kind   UnitKind
	choice UnitChoice
	custom string
}

// StandardUnit builds a Unit from one of the standard choices. UnitOther is
// rejected because it only makes sense together with custom text.
func StandardUnit(choice UnitChoice) (Unit, error) {
	if !choice.Valid() {
		return Unit{}, fmt.Errorf("%w: %q is not a valid choice", ErrInvalidUnit, choice)
	}
	if choice == UnitOther {
		return Unit{}, fmt.Errorf("%w: %q requires a custom unit", ErrInvalidUnit, choice)
	}
	return Unit{kind: UnitKindStandard, choice: choice}, nil
}

// CustomUnit builds a free-text Unit, stored as UnitOther plus the text.
func CustomUnit(text string) (Unit, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Unit{}, fmt.Errorf("%w: custom unit is empty", ErrInvalidUnit)
	}
	if len([]rune(text)) > CustomUnitMaxLength {
		return Unit{}, fmt.Errorf("%w: custom unit is longer than %d characters", ErrInvalidUnit, CustomUnitMaxLength)
	}
	return Unit{kind: UnitKindCustom, choice: UnitOther, custom: text}, nil
}

// ParseUnit builds a Unit from the two stored columns.
//
//	"", ""           -> no unit
//	"", "slice"      -> custom "slice"
//	"other", "slice" -> custom "slice"
//	"grams", ""      -> standard grams
//
// A standard choice combined with custom text is ambiguous and rejected.
func ParseUnit(choice, custom string) (Unit, error) {
	choice = strings.TrimSpace(choice)
	custom = strings.TrimSpace(custom)

	switch {
	case choice == "" && custom == "":
		return Unit{}, nil
	case choice == "" || UnitChoice(choice) == UnitOther:
		return CustomUnit(custom)
	case custom != "":
		return Unit{}, fmt.Errorf("%w: custom unit %q given with standard unit %q", ErrInvalidUnit, custom, choice)
	default:
		return StandardUnit(UnitChoice(choice))
	}
}

func (u Unit) Kind() UnitKind { return u.kind }

// Choice returns the stored choice; UnitOther for custom units and "" when empty.
func (u Unit) Choice() UnitChoice { return u.choice }

// Custom returns the free text of a custom unit.
func (u Unit) Custom() string { return u.custom }

func (u Unit) IsZero() bool { return u.kind == UnitKindNone }

func (u Unit) String() string {
	switch u.kind {
	case UnitKindStandard:
		return u.choice.Label()
	case UnitKindCustom:
		return u.custom
	default:
		return ""
	}
}

// columns splits u into the values stored in the unit and custom_unit columns.
func (u Unit) columns() (UnitChoice, *string) {
	if u.kind != UnitKindCustom {
		return u.choice, nil
	}
	custom := u.custom
	return u.choice, &custom
}

func unitFromColumns(choice UnitChoice, custom *string) Unit {
	text := ""
	if custom != nil {
		text = *custom
	}
	u, err := ParseUnit(string(choice), text)
	if err != nil {
		// Rows written outside the service layer; keep whatever is there.
		return Unit{kind: UnitKindCustom, choice: choice, custom: text}
	}
	return u
}
