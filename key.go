package blockscene

import (
	"fmt"
	"strings"
)

// Key identifies a keyboard key independent of the windowing backend.
type Key uint8

const (
	Key0 Key = iota
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEqual
	KeyMinus
	KeySpace
	KeyEscape
	KeyCount
)

var keyNames = [KeyCount]string{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	"up", "down", "left", "right", "equal", "minus", "space", "escape",
}

func (k Key) String() string {
	if k >= KeyCount {
		return fmt.Sprintf("Key(%d)", uint8(k))
	}
	return keyNames[k]
}

// ParseKey accepts the names printed by Key.String, case-insensitively.
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range keyNames {
		if n == name {
			return Key(i), nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}
