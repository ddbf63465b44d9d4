// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package rotini validates declarative command line definitions and normalizes them into an
// immutable command tree.
//
// A definition is plain data, typically decoded from YAML or JSON with DecodeDefinition or written
// as a Definition literal. New checks every command, argument and example in the tree and either
// returns the fully built root or the first *errs.DefinitionError encountered, naming the offending
// property and the chain of command names leading to it:
//
//	root, err := rotini.New(rotini.Definition{
//		"name":        "app",
//		"description": "does things",
//		"arguments": []any{
//			rotini.Definition{"name": "count", "description": "how many", "variant": "value", "type": "number"},
//		},
//	})
//
// Argument callbacks are stored wrapped: Argument.Parser and Argument.Validator report failures as
// *errs.ParseError values whatever the user supplied callback returns or panics with.
package rotini
