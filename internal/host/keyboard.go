package host

import (
	"github.com/TheBitDrifter/blockscene"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ blockscene.Input = Keyboard{}

var keyMap = [blockscene.KeyCount]ebiten.Key{
	blockscene.Key0:      ebiten.KeyDigit0,
	blockscene.Key1:      ebiten.KeyDigit1,
	blockscene.Key2:      ebiten.KeyDigit2,
	blockscene.Key3:      ebiten.KeyDigit3,
	blockscene.Key4:      ebiten.KeyDigit4,
	blockscene.Key5:      ebiten.KeyDigit5,
	blockscene.Key6:      ebiten.KeyDigit6,
	blockscene.Key7:      ebiten.KeyDigit7,
	blockscene.Key8:      ebiten.KeyDigit8,
	blockscene.Key9:      ebiten.KeyDigit9,
	blockscene.KeyUp:     ebiten.KeyArrowUp,
	blockscene.KeyDown:   ebiten.KeyArrowDown,
	blockscene.KeyLeft:   ebiten.KeyArrowLeft,
	blockscene.KeyRight:  ebiten.KeyArrowRight,
	blockscene.KeyEqual:  ebiten.KeyEqual,
	blockscene.KeyMinus:  ebiten.KeyMinus,
	blockscene.KeySpace:  ebiten.KeySpace,
	blockscene.KeyEscape: ebiten.KeyEscape,
}

// Keyboard reads ebiten's key state. It is only meaningful while the game
// loop is running.
type Keyboard struct{}

func (Keyboard) TriggerKey(k blockscene.Key) bool {
	if k >= blockscene.KeyCount {
		return false
	}
	return inpututil.IsKeyJustPressed(keyMap[k])
}

func (Keyboard) PushKey(k blockscene.Key) bool {
	if k >= blockscene.KeyCount {
		return false
	}
	return ebiten.IsKeyPressed(keyMap[k])
}
