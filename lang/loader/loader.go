// Package loader turns an IPPcode23 XML source document into a
// machine.Program: a flat, order-sorted vector of machine.Instruction
// values ready to run. It is the only package that imports encoding/xml;
// once a Program exists, the machine package never looks at XML again.
package loader

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"ippcode23/lang/machine"
	"ippcode23/lang/types"
)

// xmlProgram mirrors the <program> root element.
type xmlProgram struct {
	XMLName      xml.Name          `xml:"program"`
	Instructions []xmlInstruction `xml:"instruction"`
}

type xmlInstruction struct {
	Order  string   `xml:"order,attr"`
	Opcode string   `xml:"opcode,attr"`
	Args   []xmlArg `xml:",any"`
}

type xmlArg struct {
	XMLName xml.Name
	Type    string `xml:"type,attr"`
	Text    string `xml:",chardata"`
}

// Load decodes r as an IPPcode23 XML source document and returns the
// resulting Program, sorted by ascending instruction order.
//
// Errors are always *machine.Error: malformed XML (not well-formed) maps to
// CodeFormatXML, anything that is well-formed XML but violates the
// instruction schema maps to CodeBadXML.
func Load(r io.Reader) (machine.Program, error) {
	var doc xmlProgram
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		// An UnmarshalError (e.g. a root element other than <program>) means
		// the document parsed but does not fit the schema.
		var uerr xml.UnmarshalError
		if errors.As(err, &uerr) {
			return nil, badXML("%s", uerr.Error())
		}
		return nil, &machine.Error{Code: machine.CodeFormatXML, Msg: err.Error()}
	}

	type ordered struct {
		order int
		instr machine.Instruction
	}
	entries := make([]ordered, 0, len(doc.Instructions))
	seenOrder := make(map[int]bool, len(doc.Instructions))

	for _, xi := range doc.Instructions {
		if xi.Opcode == "" {
			return nil, badXML("instruction is missing its opcode attribute")
		}
		if xi.Order == "" {
			return nil, badXML("instruction %s is missing its order attribute", xi.Opcode)
		}
		order, err := strconv.Atoi(xi.Order)
		if err != nil || order < 1 {
			return nil, badXML("instruction %s has invalid order %q", xi.Opcode, xi.Order)
		}
		if seenOrder[order] {
			return nil, badXML("duplicate instruction order %d", order)
		}
		seenOrder[order] = true

		args, err := parseArgs(xi)
		if err != nil {
			return nil, err
		}

		instr, err := machine.Build(xi.Opcode, args)
		if err != nil {
			return nil, err
		}
		entries = append(entries, ordered{order: order, instr: instr})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].order < entries[j].order })

	program := make(machine.Program, len(entries))
	for i, e := range entries {
		program[i] = e.instr
	}
	return program, nil
}

// parseArgs extracts argN children in argument-index order, validating tag
// names and filling any gap as a schema violation.
func parseArgs(xi xmlInstruction) ([]machine.Arg, error) {
	const maxArity = 3
	slots := make([]*xmlArg, maxArity)
	for i := range xi.Args {
		a := xi.Args[i]
		idx, ok := argSlot(a.XMLName.Local)
		if !ok {
			return nil, badXML("instruction %s has unknown argument tag <%s>", xi.Opcode, a.XMLName.Local)
		}
		if idx >= maxArity {
			return nil, badXML("instruction %s has out-of-range argument tag <%s>", xi.Opcode, a.XMLName.Local)
		}
		if slots[idx] != nil {
			return nil, badXML("instruction %s has a duplicate <%s>", xi.Opcode, a.XMLName.Local)
		}
		slots[idx] = &xi.Args[i]
	}

	arity := 0
	for i, s := range slots {
		if s != nil {
			arity = i + 1
		}
	}
	for i := 0; i < arity; i++ {
		if slots[i] == nil {
			return nil, badXML("instruction %s is missing arg%d", xi.Opcode, i+1)
		}
	}

	args := make([]machine.Arg, arity)
	for i := 0; i < arity; i++ {
		arg, err := parseArg(xi.Opcode, *slots[i])
		if err != nil {
			return nil, err
		}
		args[i] = arg
	}
	return args, nil
}

// argSlot maps an "argN" tag name to its zero-based index.
func argSlot(tag string) (int, bool) {
	if len(tag) != 4 || tag[:3] != "arg" {
		return -1, false
	}
	n := tag[3]
	if n < '1' || n > '9' {
		return -1, false
	}
	return int(n - '1'), true
}

func parseArg(opcode string, a xmlArg) (machine.Arg, error) {
	switch a.Type {
	case "var":
		frame, name, ok := splitVar(a.Text)
		if !ok {
			return nil, badXML("instruction %s has malformed var operand %q", opcode, a.Text)
		}
		return machine.Var{Frame: frame, Name: name}, nil
	case "int":
		n, err := strconv.ParseInt(a.Text, 10, 64)
		if err != nil {
			return nil, badXML("instruction %s has malformed int operand %q", opcode, a.Text)
		}
		return machine.Literal{Value: types.Int(n)}, nil
	case "string":
		return machine.Literal{Value: types.String(a.Text)}, nil
	case "bool":
		switch a.Text {
		case "true":
			return machine.Literal{Value: types.True}, nil
		case "false":
			return machine.Literal{Value: types.False}, nil
		default:
			return nil, badXML("instruction %s has malformed bool operand %q", opcode, a.Text)
		}
	case "nil":
		return machine.Literal{Value: types.Nil}, nil
	case "label":
		return machine.Label{Name: a.Text}, nil
	case "type":
		switch a.Text {
		case "int", "string", "bool", "nil":
			return machine.TypeArg{Name: a.Text}, nil
		default:
			return nil, badXML("instruction %s has unknown type operand %q", opcode, a.Text)
		}
	default:
		return nil, badXML("instruction %s has unknown argument type %q", opcode, a.Type)
	}
}

// splitVar splits "FRAME@NAME" into its two halves. Frame membership in
// {GF,TF,LF} is not checked here; an unrecognized frame tag reaches the
// machine package unchanged, which rejects it as NonexistsFrame at the
// point it is actually used.
func splitVar(s string) (frame, name string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == '@' {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}

func badXML(format string, args ...interface{}) *machine.Error {
	return &machine.Error{Code: machine.CodeBadXML, Msg: fmt.Sprintf(format, args...)}
}
