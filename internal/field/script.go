package field

import (
	"fmt"
	"strings"
)

// OpKind is a scripted keystroke.
type OpKind int

const (
	OpInsert OpKind = iota
	OpBackspace
	OpDelete
	OpLeft
	OpRight
	OpHome
	OpEnd
	OpSelectLeft
	OpSelectRight
	OpClear
)

// Op is one step of a key script. Text is only used by OpInsert.
type Op struct {
	Kind OpKind
	Text string
}

var scriptKeys = map[string]OpKind{
	"bs":     OpBackspace,
	"del":    OpDelete,
	"left":   OpLeft,
	"right":  OpRight,
	"home":   OpHome,
	"end":    OpEnd,
	"sleft":  OpSelectLeft,
	"sright": OpSelectRight,
	"clear":  OpClear,
}

// ParseScript reads a key script such as "555<bs>1<left><del>". Plain text
// is typed one rune per keystroke; "<lt>" types a literal '<'; "<paste:...>"
// inserts its argument in one edit.
func ParseScript(s string) ([]Op, error) {
	var ops []Op
	rest := s
	for rest != "" {
		i := strings.IndexByte(rest, '<')
		if i < 0 {
			ops = appendRunes(ops, rest)
			break
		}
		ops = appendRunes(ops, rest[:i])
		j := strings.IndexByte(rest[i:], '>')
		if j < 0 {
			return nil, fmt.Errorf("unterminated key at %q", rest[i:])
		}
		name := rest[i+1 : i+j]
		rest = rest[i+j+1:]
		switch {
		case name == "lt":
			ops = append(ops, Op{Kind: OpInsert, Text: "<"})
		case strings.HasPrefix(name, "paste:"):
			ops = append(ops, Op{Kind: OpInsert, Text: strings.TrimPrefix(name, "paste:")})
		default:
			k, ok := scriptKeys[name]
			if !ok {
				return nil, fmt.Errorf("unknown key <%s>", name)
			}
			ops = append(ops, Op{Kind: k})
		}
	}
	return ops, nil
}

func appendRunes(ops []Op, s string) []Op {
	for _, r := range s {
		ops = append(ops, Op{Kind: OpInsert, Text: string(r)})
	}
	return ops
}

// Run applies ops to f in order.
func Run(f *Field, ops []Op) {
	for _, op := range ops {
		switch op.Kind {
		case OpInsert:
			f.Insert(op.Text)
		case OpBackspace:
			f.Backspace()
		case OpDelete:
			f.Delete()
		case OpLeft:
			f.MoveCursor(-1)
		case OpRight:
			f.MoveCursor(1)
		case OpHome:
			f.MoveTo(0)
		case OpEnd:
			f.MoveTo(len([]rune(f.Display())))
		case OpSelectLeft:
			f.ExtendSelection(-1)
		case OpSelectRight:
			f.ExtendSelection(1)
		case OpClear:
			f.Clear()
		}
	}
}
