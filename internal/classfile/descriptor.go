package classfile

import (
	"fmt"
	"strings"
)

// SimpleName turns an internal or dotted class name into its unqualified form.
// "com/shop/Product" and "com.shop.Product" both become "Product"; nested
// classes keep their '$' ("Outer$Inner").
func SimpleName(name string) string {
	if i := strings.LastIndexAny(name, "/."); i >= 0 {
		return name[i+1:]
	}
	return name
}

// PackageName returns the dotted package of an internal name
func PackageName(internalName string) string {
	i := strings.LastIndex(internalName, "/")
	if i < 0 {
		return ""
	}
	return strings.ReplaceAll(internalName[:i], "/", ".")
}

var baseTypes = map[byte]string{
	'B': "byte",
	'C': "char",
	'D': "double",
	'F': "float",
	'I': "int",
	'J': "long",
	'S': "short",
	'Z': "boolean",
	'V': "void",
}

// ParseFieldDescriptor converts a field descriptor into a source-style type name,
// e.g. "[Lcom/shop/Product;" becomes "Product[]"
func ParseFieldDescriptor(desc string) (string, error) {
	typeName, rest, err := parseType(desc)
	if err != nil {
		return "", err
	}
	if rest != "" {
		return "", fmt.Errorf("trailing data in descriptor %q", desc)
	}
	return typeName, nil
}

// ParseMethodDescriptor splits "(ILjava/lang/String;)V" into its parameter and return types
func ParseMethodDescriptor(desc string) ([]string, string, error) {
	if !strings.HasPrefix(desc, "(") {
		return nil, "", fmt.Errorf("method descriptor %q does not start with '('", desc)
	}

	var params []string
	rest := desc[1:]
	for {
		if rest == "" {
			return nil, "", fmt.Errorf("unterminated parameter list in %q", desc)
		}
		if rest[0] == ')' {
			rest = rest[1:]
			break
		}

		param, remaining, err := parseType(rest)
		if err != nil {
			return nil, "", fmt.Errorf("bad parameter in %q: %w", desc, err)
		}
		params = append(params, param)
		rest = remaining
	}

	ret, rest, err := parseType(rest)
	if err != nil {
		return nil, "", fmt.Errorf("bad return type in %q: %w", desc, err)
	}
	if rest != "" {
		return nil, "", fmt.Errorf("trailing data in descriptor %q", desc)
	}

	return params, ret, nil
}

// parseType consumes one type from the front of a descriptor
func parseType(desc string) (string, string, error) {
	dims := 0
	for dims < len(desc) && desc[dims] == '[' {
		dims++
	}
	if dims == len(desc) {
		return "", "", fmt.Errorf("missing element type in %q", desc)
	}

	var element string
	rest := desc[dims+1:]
	switch c := desc[dims]; c {
	case 'L':
		end := strings.IndexByte(desc[dims:], ';')
		if end < 0 {
			return "", "", fmt.Errorf("unterminated class type in %q", desc)
		}
		element = SimpleName(desc[dims+1 : dims+end])
		rest = desc[dims+end+1:]
	default:
		base, ok := baseTypes[c]
		if !ok {
			return "", "", fmt.Errorf("unknown type code %q in %q", c, desc)
		}
		if base == "void" && dims > 0 {
			return "", "", fmt.Errorf("array of void in %q", desc)
		}
		element = base
	}

	return element + strings.Repeat("[]", dims), rest, nil
}
