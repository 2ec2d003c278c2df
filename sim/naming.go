package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// A Named object is an object that has a name.
type Named interface {
	Name() string
}

// NameMustBeValid panics if the name does not follow the naming convention.
//
// A valid name is a dot-separated path of non-empty elements, each starting
// with a capital letter, e.g. "Core.VU1" or "Core.VIF1.FIFO". An element may
// carry square-bracket indices, e.g. "Core.Lane[3]".
func NameMustBeValid(name string) {
	if name == "" {
		panic("name must not be empty")
	}

	for _, elem := range strings.Split(name, ".") {
		if err := elementValid(elem); err != nil {
			panic(fmt.Sprintf("name %s is not valid: %s", name, err))
		}
	}
}

func elementValid(elem string) error {
	base, err := stripIndices(elem)
	if err != nil {
		return err
	}

	if base == "" {
		return fmt.Errorf("element must not be empty")
	}

	if strings.ContainsAny(base, "_-\"' ") {
		return fmt.Errorf("element %q contains an invalid character", base)
	}

	if base[0] < 'A' || base[0] > 'Z' {
		return fmt.Errorf("element %q must start with a capital letter", base)
	}

	return nil
}

func stripIndices(elem string) (string, error) {
	open := strings.IndexByte(elem, '[')
	if open < 0 {
		if strings.ContainsRune(elem, ']') {
			return "", fmt.Errorf("unmatched bracket in %q", elem)
		}

		return elem, nil
	}

	rest := elem[open:]
	for rest != "" {
		if rest[0] != '[' {
			return "", fmt.Errorf("unexpected %q after index", rest)
		}

		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return "", fmt.Errorf("unmatched bracket in %q", elem)
		}

		if _, err := strconv.Atoi(rest[1:end]); err != nil {
			return "", fmt.Errorf("index must be an integer in %q", elem)
		}

		rest = rest[end+1:]
	}

	return elem[:open], nil
}

// BuildName builds a name from a parent name and an element name.
func BuildName(parentName, elementName string) string {
	if parentName == "" {
		return elementName
	}

	return parentName + "." + elementName
}

// BuildNameWithIndex builds a name from a parent name, an element name and an
// index.
func BuildNameWithIndex(parentName, elementName string, index int) string {
	return BuildName(parentName, elementName+"["+strconv.Itoa(index)+"]")
}
