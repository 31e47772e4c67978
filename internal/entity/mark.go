package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownMark = errors.New("unknown mark")

// Mark is the content of a single board cell.
type Mark uint8

const (
	Empty Mark = iota
	PlayerX
	PlayerO
)

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Other returns the opposing player's mark. The empty mark has no opponent.
func (that Mark) Other() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func ParseMark(value string) (Mark, error) {
	switch value {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	case "":
		return Empty, nil
	default:
		return Empty, fmt.Errorf("%w: %q", ErrUnknownMark, value)
	}
}

// Marks travel over the wire and into storage as "X", "O" or "".
func (that Mark) MarshalJSON() ([]byte, error) {
	return json.Marshal(that.String())
}

func (that *Mark) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("failed to unmarshal mark: %w", err)
	}

	mark, err := ParseMark(value)
	if err != nil {
		return err
	}

	*that = mark

	return nil
}
