package contract

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/erraggy/oacontract/ast"
)

const generatedHeader = "// Code generated by oacontract. DO NOT EDIT.\n"

// render writes the TypeScript module for result: imports, one exported
// validator per definition in table order, then the router.
func render(result *Result, zodImport string) ([]byte, error) {
	declarations := len(result.Definitions) + len(result.Operations)
	buf := getModuleBuffer(declarations)
	defer putModuleBuffer(buf, declarations)

	buf.WriteString(generatedHeader)
	if result.Title != "" {
		fmt.Fprintf(buf, "// Source: %s\n", commentText(result.Title+" "+result.Version))
	}
	buf.WriteByte('\n')
	fmt.Fprintf(buf, "import { initContract } from %s;\n", strconv.Quote(DefaultTsRestImport))
	fmt.Fprintf(buf, "import { %s } from %s;\n", ast.ZodIdent, strconv.Quote(zodImport))

	for _, def := range result.Definitions {
		fmt.Fprintf(buf, "\nexport const %s = ", def.Entry.Identifier)
		if err := ast.Fprint(buf, def.Expr); err != nil {
			return nil, err
		}
		buf.WriteString(";\n")
	}

	fmt.Fprintf(buf, "\nconst %s = initContract();\n", contractIdent)

	router := ast.Object{Fields: make([]ast.Field, 0, len(result.Operations))}
	for _, op := range result.Operations {
		router.Fields = append(router.Fields, ast.Field{Key: op.Key, Value: op.Route})
	}
	fmt.Fprintf(buf, "\nexport const %s = ", result.ContractName)
	routerCall := ast.Chain{
		Base:  ast.Ident{Name: contractIdent},
		Calls: []ast.Call{ast.NewCall("router", router)},
	}
	if err := ast.Fprint(buf, routerCall); err != nil {
		return nil, err
	}
	buf.WriteString(";\n")

	return bytes.Clone(buf.Bytes()), nil
}

// commentText flattens s onto a single line. strings.Fields splits on every
// TypeScript line terminator, U+2028 and U+2029 included.
func commentText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
