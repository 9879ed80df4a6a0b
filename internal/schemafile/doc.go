// Package schemafile loads schema descriptions and conversion requests from
// YAML.
//
// # Document Overview
//
//	version: "1"
//	scalars: [DateTime]
//	enums:
//	  - name: Role
//	    values: [ADMIN, AUTHOR]
//	interfaces:
//	  - name: Node
//	    fields:
//	      id: ID!
//	types:
//	  - name: User
//	    description: A registered account.
//	    fields:
//	      - name: id
//	        type: ID!
//	      - name: friends
//	        type: "[User!]"
//	        resolver: true     # attached by a resolver binding
//	unions:
//	  - name: SearchResult
//	    types: [User, Post]
//	inputs:
//	  - name: PageInput
//	    fields:
//	      first: Int
//	convert:
//	  - type: User
//	    prefix: Create
//	    postfix: Input
//
// # Fields
//
// Fields may be written as a list of mappings (full form) or as a mapping
// from field name to type expression (short form); declaration order is
// kept either way. The mere presence of the "resolver" key marks a field as
// resolver-bound, whatever its value.
//
// # Type Expressions
//
// "Name" is nullable, "Name!" is required, "[T]" is a list of T.
// Expressions nest: "[[Int!]]!".
package schemafile
