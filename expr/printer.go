package expr

import "strings"

// Print renders an AST back to source text. The output always parses
// back to an AST equal in evaluated meaning to the input (parenthesizing
// every binary/logical/conditional operand), though it is not required
// to reproduce the original token-for-token: Print is a canonical
// formatter, not an identity transform.
func Print(node Expr) string {
	var sb strings.Builder
	writeNode(&sb, node)
	return sb.String()
}

func writeNode(sb *strings.Builder, node Expr) {
	switch e := node.(type) {
	case *Literal:
		sb.WriteString(e.Value.displayLiteral())
	case *Identifier:
		sb.WriteString(e.Name)
	case *Unary:
		sb.WriteString(string(e.Op))
		writeNode(sb, e.Operand)
	case *Binary:
		sb.WriteByte('(')
		writeNode(sb, e.Left)
		sb.WriteByte(' ')
		sb.WriteString(operatorLexeme(e.Op))
		sb.WriteByte(' ')
		writeNode(sb, e.Right)
		sb.WriteByte(')')
	case *Logical:
		sb.WriteByte('(')
		writeNode(sb, e.Left)
		sb.WriteByte(' ')
		sb.WriteString(operatorLexeme(e.Op))
		sb.WriteByte(' ')
		writeNode(sb, e.Right)
		sb.WriteByte(')')
	case *Grouping:
		sb.WriteByte('(')
		writeNode(sb, e.Inner)
		sb.WriteByte(')')
	case *Conditional:
		sb.WriteByte('(')
		writeNode(sb, e.Cond)
		sb.WriteString(" ? ")
		writeNode(sb, e.Then)
		sb.WriteString(" : ")
		writeNode(sb, e.Else)
		sb.WriteByte(')')
	case *Call:
		writeNode(sb, e.Callee)
		sb.WriteByte('(')
		for i, a := range e.Args {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeNode(sb, a)
		}
		sb.WriteByte(')')
	case *Member:
		writeNode(sb, e.Object)
		if e.Optional {
			sb.WriteString("?.")
		} else {
			sb.WriteByte('.')
		}
		sb.WriteString(e.Name)
	case *Index:
		writeNode(sb, e.Object)
		sb.WriteByte('[')
		writeNode(sb, e.IndexVal)
		sb.WriteByte(']')
	case *ArrayLit:
		sb.WriteByte('[')
		for i, el := range e.Elements {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeNode(sb, el)
		}
		sb.WriteByte(']')
	case *ObjectLit:
		sb.WriteByte('{')
		for i, entry := range e.Entries {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeNode(sb, entry.Key)
			sb.WriteString(": ")
			writeNode(sb, entry.Value)
		}
		sb.WriteByte('}')
	case *Interpolation:
		sb.WriteString("${")
		for _, part := range e.Parts {
			if part.IsText {
				sb.WriteString(part.Text)
			} else {
				writeNode(sb, part.Value)
			}
		}
		sb.WriteByte('}')
	case *Pipe:
		writeNode(sb, e.Value)
		sb.WriteString(" | ")
		writeNode(sb, e.Filter)
	case *Lambda:
		sb.WriteByte('(')
		sb.WriteString(strings.Join(e.Params, ", "))
		sb.WriteString(") => ")
		writeNode(sb, e.Body)
	default:
		sb.WriteString("<?>")
	}
}

func operatorLexeme(k TokenKind) string {
	switch k {
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenMultiply:
		return "*"
	case TokenDivide:
		return "/"
	case TokenModulo:
		return "%"
	case TokenPower:
		return "**"
	case TokenEqual:
		return "=="
	case TokenNotEqual:
		return "!="
	case TokenLT:
		return "<"
	case TokenLE:
		return "<="
	case TokenGT:
		return ">"
	case TokenGE:
		return ">="
	case TokenAnd:
		return "&&"
	case TokenOr:
		return "||"
	default:
		return string(k)
	}
}

// displayLiteral renders a Literal's payload as it would appear in
// source text, quoting strings unlike Value.String's display form.
func (v Value) displayLiteral() string {
	switch v.Kind() {
	case KindString:
		return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(v.RawString()) + `"`
	case KindNull:
		return "null"
	}
	return v.String()
}
