package machine

import (
	"fmt"
	"strconv"
	"strings"

	"ippcode23/lang/types"
)

// decodeEscapes implements WRITE's \DDD rule: a backslash followed by
// exactly three decimal digits is replaced by the rune with that code
// point. Anything else passes through unchanged, including a lone
// backslash not followed by three digits.
func decodeEscapes(s string) string {
	var b strings.Builder
	rs := []rune(s)
	for i := 0; i < len(rs); i++ {
		if rs[i] == '\\' && i+3 < len(rs) && isDigit(rs[i+1]) && isDigit(rs[i+2]) && isDigit(rs[i+3]) {
			code := int(rs[i+1]-'0')*100 + int(rs[i+2]-'0')*10 + int(rs[i+3]-'0')
			b.WriteRune(rune(code))
			i += 3
			continue
		}
		b.WriteRune(rs[i])
	}
	return b.String()
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// Write is WRITE: formats a value to standard output. Strings get \DDD
// escape decoding; other types use their natural text form, with NIL
// printing as the empty string rather than "nil".
type Write struct {
	Src Symb
}

func (Write) Opcode() string { return "WRITE" }

func (i *Write) Exec(ctx *Context) error {
	v, err := ctx.Eval(i.Src)
	if err != nil {
		return err
	}
	var out string
	switch val := v.(type) {
	case types.String:
		out = decodeEscapes(string(val))
	case types.NilType:
		out = ""
	default:
		out = val.String()
	}
	_, err = fmt.Fprint(ctx.Stdout, out)
	return err
}

// Dprint is DPRINT: writes the raw internal representation of a value to
// standard error, with no escape decoding.
type Dprint struct {
	Src Symb
}

func (Dprint) Opcode() string { return "DPRINT" }

func (i *Dprint) Exec(ctx *Context) error {
	v, err := ctx.Eval(i.Src)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(ctx.Stderr, v.String())
	return err
}

// Read is READ v, t: reads one line from the input stream and stores it
// into v, converted according to type tag t.
type Read struct {
	Dst  Var
	Type string // one of int, string, bool, nil
}

func (Read) Opcode() string { return "READ" }

func (i *Read) Exec(ctx *Context) error {
	line, ok := ctx.ReadLine()

	if !ok || line == "" {
		switch i.Type {
		case "string":
			return ctx.Write(i.Dst, types.String(""))
		case "bool":
			// Preserves the specified contract: empty BOOL input reads as
			// false, not NIL, unlike every other type.
			return ctx.Write(i.Dst, types.False)
		default:
			return ctx.Write(i.Dst, types.Nil)
		}
	}

	switch i.Type {
	case "string":
		return ctx.Write(i.Dst, types.String(line))
	case "bool":
		return ctx.Write(i.Dst, types.Bool(strings.EqualFold(line, "true")))
	case "int":
		n, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return ctx.Write(i.Dst, types.Nil)
		}
		return ctx.Write(i.Dst, types.Int(n))
	default:
		return ctx.Write(i.Dst, types.Nil)
	}
}
