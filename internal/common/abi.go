package common

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var declarationRegex = regexp.MustCompile(`^(\w+)\((.*)\)$`)

// ConstructEventABI builds an event definition from its textual signature,
// e.g. "Transfer(address indexed from, address indexed to, uint256 value)".
// Parameter names and the indexed keyword are optional.
func ConstructEventABI(signature string) (*abi.Event, error) {
	name, inputs, err := parseDeclaration(signature)
	if err != nil {
		return nil, fmt.Errorf("invalid event signature %q: %w", signature, err)
	}
	event := abi.NewEvent(name, name, false, inputs)
	return &event, nil
}

// ConstructFunctionABI builds a method definition from its textual signature.
func ConstructFunctionABI(signature string) (*abi.Method, error) {
	name, inputs, err := parseDeclaration(signature)
	if err != nil {
		return nil, fmt.Errorf("invalid function signature %q: %w", signature, err)
	}
	method := abi.NewMethod(name, name, abi.Function, "", false, false, inputs, nil)
	return &method, nil
}

func parseDeclaration(declaration string) (string, abi.Arguments, error) {
	matches := declarationRegex.FindStringSubmatch(strings.TrimSpace(declaration))
	if len(matches) != 3 {
		return "", nil, fmt.Errorf("expected name(params)")
	}

	var args abi.Arguments
	for i, param := range splitTopLevel(matches[2]) {
		arg, err := parseArgument(param, strconv.Itoa(i))
		if err != nil {
			return "", nil, err
		}
		args = append(args, arg)
	}
	return matches[1], args, nil
}

// splitTopLevel splits a parameter list on the commas outside of tuples.
func splitTopLevel(list string) []string {
	var parts []string
	var current strings.Builder
	depth := 0
	flush := func() {
		if part := strings.TrimSpace(current.String()); part != "" {
			parts = append(parts, part)
		}
		current.Reset()
	}
	for _, r := range list {
		switch {
		case r == ',' && depth == 0:
			flush()
			continue
		case r == '(':
			depth++
		case r == ')':
			depth--
		}
		current.WriteRune(r)
	}
	flush()
	return parts
}

func parseArgument(param string, fallbackName string) (abi.Argument, error) {
	typeName, modifiers, err := splitType(param)
	if err != nil {
		return abi.Argument{}, err
	}
	name, indexed := nameAndIndexed(modifiers, fallbackName)

	var typ abi.Type
	if strings.HasPrefix(typeName, "(") {
		typ, err = tupleType(typeName)
	} else {
		typ, err = abi.NewType(typeName, typeName, nil)
	}
	if err != nil {
		return abi.Argument{}, fmt.Errorf("param %q: %w", param, err)
	}
	return abi.Argument{Name: name, Type: typ, Indexed: indexed}, nil
}

// splitType separates the type of a parameter from the tokens following it.
// Tuple types span up to their closing parenthesis and an optional [].
func splitType(param string) (string, []string, error) {
	if !strings.HasPrefix(param, "(") {
		tokens := strings.Fields(param)
		if len(tokens) == 0 {
			return "", nil, fmt.Errorf("empty parameter")
		}
		return tokens[0], tokens[1:], nil
	}

	end := strings.LastIndex(param, ")")
	if end == -1 {
		return "", nil, fmt.Errorf("unterminated tuple %q", param)
	}
	end++
	if strings.HasPrefix(param[end:], "[]") {
		end += 2
	}
	return param[:end], strings.Fields(param[end:]), nil
}

func nameAndIndexed(tokens []string, fallbackName string) (string, bool) {
	name := fallbackName
	indexed := false
	for _, token := range tokens {
		if token == "indexed" {
			indexed = true
			continue
		}
		name = token
	}
	return name, indexed
}

func tupleType(typeName string) (abi.Type, error) {
	kind, inner := tupleKind(typeName)
	components, err := tupleComponents(inner)
	if err != nil {
		return abi.Type{}, err
	}
	return abi.NewType(kind, kind, components)
}

// tupleKind returns "tuple" or "tuple[]" and the component list between the
// outer parentheses.
func tupleKind(typeName string) (string, string) {
	kind := "tuple"
	if strings.HasSuffix(typeName, "[]") {
		kind = "tuple[]"
		typeName = strings.TrimSuffix(typeName, "[]")
	}
	return kind, strings.TrimSuffix(strings.TrimPrefix(typeName, "("), ")")
}

// tupleComponents names unnamed fields fieldN; go-ethereum rejects anonymous
// tuple fields.
func tupleComponents(inner string) ([]abi.ArgumentMarshaling, error) {
	components := []abi.ArgumentMarshaling{}
	for i, param := range splitTopLevel(inner) {
		typeName, modifiers, err := splitType(param)
		if err != nil {
			return nil, err
		}
		name, _ := nameAndIndexed(modifiers, fmt.Sprintf("field%d", i))

		component := abi.ArgumentMarshaling{Name: name, Type: typeName}
		if strings.HasPrefix(typeName, "(") {
			kind, nested := tupleKind(typeName)
			component.Type = kind
			if component.Components, err = tupleComponents(nested); err != nil {
				return nil, err
			}
		}
		components = append(components, component)
	}
	return components, nil
}
