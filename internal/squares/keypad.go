package squares

import "github.com/gdamore/tcell/v2"

type Key uint8

const (
	KeyA Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyL
	KeyR
	keyCount
)

// Keypad records the keys pressed since the last Flush. Systems poll it
// during Update.
type Keypad struct {
	pressed [keyCount]bool
}

func (k *Keypad) Press(key Key) {
	k.pressed[key] = true
}

func (k *Keypad) Pressed(key Key) bool {
	return k.pressed[key]
}

// Flush forgets every press. Call it once per frame, after Update.
func (k *Keypad) Flush() {
	k.pressed = [keyCount]bool{}
}

// HandleEvent records the key carried by ev. It returns false when ev asks to
// quit.
func (k *Keypad) HandleEvent(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		k.Press(KeyUp)
	case tcell.KeyDown:
		k.Press(KeyDown)
	case tcell.KeyLeft:
		k.Press(KeyLeft)
	case tcell.KeyRight:
		k.Press(KeyRight)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q':
			return false
		case 'a', ' ':
			k.Press(KeyA)
		case 'l':
			k.Press(KeyL)
		case 'r':
			k.Press(KeyR)
		}
	}
	return true
}
