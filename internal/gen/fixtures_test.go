package gen

import (
	"inputtype-generator/internal/schema"
)

func sampleInputs() []*schema.Input {
	role := &schema.Enum{Name: "Role", Values: []string{"ADMIN", "READ_ONLY"}}

	address := schema.NewInput("AddressInput",
		schema.Field{Name: "street", Type: schema.RequiredOf(schema.String)},
	)

	user := schema.NewInput("UserInput",
		schema.Field{Name: "id", Type: schema.RequiredOf(schema.ID), Description: "Primary key."},
		schema.Field{Name: "role", Type: role},
		schema.Field{Name: "address", Type: address},
		schema.Field{Name: "tags", Type: schema.RequiredOf(schema.ListOf(schema.RequiredOf(schema.String)))},
		schema.Field{Name: "extra", Type: schema.GenericType()},
	)

	return []*schema.Input{address, user}
}
