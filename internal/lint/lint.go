// Package lint reports problems a valid command tree may still contain: colliding subcommand
// identifiers, names which are not kebab-case and example usages which cannot be split into words.
package lint

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/iancoleman/strcase"

	"github.com/napalu/rotini"
	"github.com/napalu/rotini/types/orderedmap"
)

// Kind classifies a Finding
type Kind int

const (
	// DuplicateIdentifier marks a token naming more than one subcommand slot of the same command
	DuplicateIdentifier Kind = iota
	// UnsplittableUsage marks an example usage with unbalanced quotes or a dangling escape
	UnsplittableUsage
	// NonKebabName marks a command name, alias or argument name holding upper-case letters or
	// underscores
	NonKebabName
)

func (k Kind) String() string {
	switch k {
	case DuplicateIdentifier:
		return "duplicate-identifier"
	case UnsplittableUsage:
		return "unsplittable-usage"
	case NonKebabName:
		return "non-kebab-name"
	}

	return "unknown"
}

// Finding is a single lint result
type Finding struct {
	Kind Kind
	// Path is the chain of command names leading to the command the finding belongs to
	Path []string
	// Subject is the duplicated identifier, the offending name or the offending usage
	Subject string
	// Count is how often a duplicated identifier occurs
	Count int
	// Suggestion is the kebab-case spelling of a NonKebabName subject
	Suggestion string
	Err        error
}

func (f Finding) String() string {
	path := strings.Join(f.Path, " ")
	switch f.Kind {
	case DuplicateIdentifier:
		return fmt.Sprintf("%s: %s: %q appears %d times", path, f.Kind, f.Subject, f.Count)
	case UnsplittableUsage:
		return fmt.Sprintf("%s: %s: %q: %v", path, f.Kind, f.Subject, f.Err)
	case NonKebabName:
		return fmt.Sprintf("%s: %s: %q, use %q", path, f.Kind, f.Subject, f.Suggestion)
	}

	return fmt.Sprintf("%s: %s", path, f.Kind)
}

// Check walks root and returns all findings, parents before children. Duplicates are reported once
// per identifier, in order of first appearance.
func Check(root *rotini.Command) []Finding {
	var findings []Finding

	_ = root.Walk(func(path []string, command *rotini.Command) error {
		findings = append(findings, duplicates(path, command.SubcommandIdentifiers)...)
		findings = append(findings, names(path, command)...)

		for _, example := range command.Examples {
			if _, err := example.Argv(); err != nil {
				findings = append(findings, Finding{
					Kind:    UnsplittableUsage,
					Path:    path,
					Subject: example.Usage,
					Err:     err,
				})
			}
		}

		return nil
	})

	return findings
}

func duplicates(path []string, identifiers []string) []Finding {
	counts := orderedmap.NewOrderedMap[string, int]()
	for _, id := range identifiers {
		counts.Update(id, func(n int) int { return n + 1 })
	}

	var findings []Finding
	for id, count := range counts.All() {
		if count > 1 {
			findings = append(findings, Finding{
				Kind:    DuplicateIdentifier,
				Path:    path,
				Subject: id,
				Count:   count,
			})
		}
	}

	return findings
}

// names checks the command's own name and aliases, then its argument names
func names(path []string, command *rotini.Command) []Finding {
	candidates := append([]string{command.Name}, command.Aliases...)
	for _, argument := range command.Arguments {
		candidates = append(candidates, argument.Name)
	}

	var findings []Finding
	for _, name := range candidates {
		if strings.IndexFunc(name, isNotKebab) < 0 {
			continue
		}
		findings = append(findings, Finding{
			Kind:       NonKebabName,
			Path:       path,
			Subject:    name,
			Suggestion: strcase.ToKebab(name),
		})
	}

	return findings
}

func isNotKebab(r rune) bool {
	return r == '_' || unicode.IsUpper(r)
}
