package gen

import (
	"strconv"
	"strings"

	"inputtype-generator/internal/schema"
)

const indent = "  "

// SDL renders inputs as GraphQL input declarations separated by blank lines.
func SDL(inputs []*schema.Input) string {
	var sb strings.Builder

	for i, in := range inputs {
		if i > 0 {
			sb.WriteString("\n")
		}

		writeDescription(&sb, "", in.Description)
		sb.WriteString("input " + in.Name + " {\n")

		for name, f := range in.Fields.All() {
			writeDescription(&sb, indent, f.Description)
			sb.WriteString(indent + name + ": " + schema.TypeString(f.Type) + "\n")
		}

		sb.WriteString("}\n")
	}

	return sb.String()
}

func writeDescription(sb *strings.Builder, prefix, desc string) {
	if desc == "" {
		return
	}

	// Block strings only need the closing delimiter escaped.
	if strings.Contains(desc, "\n") {
		sb.WriteString(prefix + `"""` + "\n")

		for _, line := range strings.Split(strings.ReplaceAll(desc, `"""`, `\"""`), "\n") {
			sb.WriteString(prefix + line + "\n")
		}

		sb.WriteString(prefix + `"""` + "\n")

		return
	}

	sb.WriteString(prefix + strconv.Quote(desc) + "\n")
}
