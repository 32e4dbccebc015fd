package compiler

import (
	"github.com/erraggy/oacontract/parser"
)

// shape is the dispatch class of a schema node. The constants are listed in
// priority order: composition and enum win over the declared type.
type shape int

const (
	shapeRef shape = iota
	shapeOneOf
	shapeAllOf
	shapeAnyOf
	shapeEnum
	shapeMultiType
	shapeFile
	shapeString
	shapeNumber
	shapeInteger
	shapeBoolean
	shapeNull
	shapeArray
	shapeObject
	shapeUnknown
	shapeUnsupported
)

var shapeNames = [...]string{
	shapeRef:         "ref",
	shapeOneOf:       "oneOf",
	shapeAllOf:       "allOf",
	shapeAnyOf:       "anyOf",
	shapeEnum:        "enum",
	shapeMultiType:   "multiType",
	shapeFile:        "file",
	shapeString:      "string",
	shapeNumber:      "number",
	shapeInteger:     "integer",
	shapeBoolean:     "boolean",
	shapeNull:        "null",
	shapeArray:       "array",
	shapeObject:      "object",
	shapeUnknown:     "unknown",
	shapeUnsupported: "unsupported",
}

func (s shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return "shape(?)"
	}
	return shapeNames[s]
}

// classify returns the first shape s matches. A nil node is unknown.
func classify(s *parser.Schema) shape {
	switch {
	case s == nil:
		return shapeUnknown
	case s.IsRef():
		return shapeRef
	case len(s.OneOf) > 0:
		return shapeOneOf
	case len(s.AllOf) > 0:
		return shapeAllOf
	case len(s.AnyOf) > 0:
		return shapeAnyOf
	case s.HasEnum:
		return shapeEnum
	case len(s.Type) > 1:
		return shapeMultiType
	case len(s.Type) == 1:
		return classifyType(s)
	case s.Items != nil:
		return shapeArray
	case s.Properties != nil || s.AdditionalProperties != nil:
		return shapeObject
	}
	return shapeUnknown
}

func classifyType(s *parser.Schema) shape {
	switch s.Type[0] {
	case "string":
		if s.Format == "binary" {
			return shapeFile
		}
		return shapeString
	case "number":
		return shapeNumber
	case "integer":
		return shapeInteger
	case "boolean":
		return shapeBoolean
	case "null":
		return shapeNull
	case "array":
		return shapeArray
	case "object":
		return shapeObject
	}
	return shapeUnsupported
}
